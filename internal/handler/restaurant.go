package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
)

// RestaurantHandler serves the singleton restaurant detail record, a
// key-value style collaborator with no invariants of its own.
type RestaurantHandler struct {
	Details DetailStore
}

// NewRestaurantHandler constructs a RestaurantHandler.
func NewRestaurantHandler(details DetailStore) *RestaurantHandler {
	if details == nil {
		panic("nil store passed to NewRestaurantHandler")
	}
	return &RestaurantHandler{Details: details}
}

type detailResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

// GetDetails handles GET /restaurant_details.
func (h *RestaurantHandler) GetDetails(c echo.Context) error {
	d, err := h.Details.Get(c.Request().Context())
	if err == repository.ErrDetailsNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant details not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load restaurant details"})
	}
	return c.JSON(http.StatusOK, detailResponse{ID: d.ID, Name: d.Name, Location: d.Location, Contact: d.Contact})
}

// UpdateDetails handles PUT /restaurant_details. The row is created
// on first use; afterwards omitted fields keep their stored value.
func (h *RestaurantHandler) UpdateDetails(c echo.Context) error {
	var body struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
		Contact  *string `json:"contact"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	d, err := h.Details.Get(ctx)
	if err == repository.ErrDetailsNotFound {
		d = model.RestaurantDetail{Name: "Unknown", Location: "Unknown", Contact: "Unknown"}
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load restaurant details"})
	}

	if body.Name != nil {
		d.Name = *body.Name
	}
	if body.Location != nil {
		d.Location = *body.Location
	}
	if body.Contact != nil {
		d.Contact = *body.Contact
	}

	if _, err := h.Details.Upsert(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update restaurant details"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Restaurant details updated successfully"})
}
