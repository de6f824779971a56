package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
)

// MenuHandler serves the public menu listing and the admin catalog
// management endpoints.
type MenuHandler struct {
	Menu MenuStore
}

// NewMenuHandler constructs a MenuHandler.
func NewMenuHandler(menu MenuStore) *MenuHandler {
	if menu == nil {
		panic("nil store passed to NewMenuHandler")
	}
	return &MenuHandler{Menu: menu}
}

type menuItemResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ListMenu handles GET /menu. The route sits behind the response
// cache in front of the router, so repeated reads rarely hit MySQL.
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.Menu.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list menu"})
	}
	out := make([]menuItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, menuItemResponse{ID: m.ID, Name: m.Name, Price: m.Price})
	}
	return c.JSON(http.StatusOK, out)
}

// CreateItem handles POST /admin/menu.
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var body struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" || body.Price == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and price are required"})
	}
	if *body.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be non-negative"})
	}
	id, err := h.Menu.Create(c.Request().Context(), name, *body.Price)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create menu item"})
	}
	return c.JSON(http.StatusCreated, menuItemResponse{ID: id, Name: name, Price: *body.Price})
}

// UpdateItem handles PUT /admin/menu/:id. Omitted fields keep their
// stored value.
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	existing, err := h.Menu.GetByID(ctx, id)
	if err == repository.ErrMenuItemNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load menu item"})
	}

	name := existing.Name
	if body.Name != nil {
		name = strings.TrimSpace(*body.Name)
		if name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
		}
	}
	price := existing.Price
	if body.Price != nil {
		if *body.Price < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be non-negative"})
		}
		price = *body.Price
	}

	if err := h.Menu.Update(ctx, id, name, price); err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update menu item"})
	}
	return c.JSON(http.StatusOK, menuItemResponse{ID: id, Name: name, Price: price})
}

// DeleteItem handles DELETE /admin/menu/:id. Past orders keep their
// denormalized item name, so this never touches order history.
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Menu.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete menu item"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Menu item deleted successfully"})
}
