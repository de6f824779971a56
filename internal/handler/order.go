package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
	"github.com/krishnasharma7/restaurant-management-system/internal/queue"
	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
)

// OrderHandler is the order intake component. Two entry points with
// different validation strength coexist: PlaceOrder trusts the
// caller-supplied item name, PlaceOrderChecked verifies the item
// against the catalog first. Both request surfaces are live and must
// stay independently reachable.
type OrderHandler struct {
	Orders OrderStore
	Menu   MenuStore
	Events EventPublisher
}

// NewOrderHandler constructs an OrderHandler. Both stores must be
// non-nil; the publisher is optional.
func NewOrderHandler(orders OrderStore, menu MenuStore, events EventPublisher) *OrderHandler {
	if orders == nil || menu == nil {
		panic("nil store passed to NewOrderHandler")
	}
	return &OrderHandler{Orders: orders, Menu: menu, Events: events}
}

// orderResponse is the wire shape of an order row on the view
// endpoint. The row id is not exposed there; the staff dashboard
// renders the list positionally.
type orderResponse struct {
	UserID   int64  `json:"user_id"`
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// PlaceOrder handles POST /order, the unchecked intake. The caller
// supplies the item name and no existence check is made against the
// menu; the order is persisted exactly as given.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var body struct {
		UserID   *int64  `json:"user_id"`
		ItemID   *int64  `json:"item_id"`
		ItemName *string `json:"item_name"`
		Quantity *int    `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == nil || body.ItemID == nil || body.ItemName == nil || body.Quantity == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id, item_id, item_name and quantity are required"})
	}
	if *body.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be a positive integer"})
	}

	order := model.Order{
		UserID:   *body.UserID,
		ItemID:   *body.ItemID,
		ItemName: *body.ItemName,
		Quantity: *body.Quantity,
	}
	if err := h.Orders.Create(c.Request().Context(), &order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create order"})
	}
	h.publishPlaced(order, false)
	return c.JSON(http.StatusCreated, echo.Map{"message": "Order created successfully"})
}

// PlaceOrderChecked handles POST /customers/order, the strict intake.
// The referenced menu item must exist; the order is persisted under
// the catalog item's name, not a caller-supplied one.
func (h *OrderHandler) PlaceOrderChecked(c echo.Context) error {
	var body struct {
		UserID   *int64 `json:"user_id"`
		ItemID   *int64 `json:"item_id"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == nil || body.ItemID == nil || body.Quantity == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id, item_id and quantity are required"})
	}
	if *body.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be a positive integer"})
	}

	ctx := c.Request().Context()
	item, err := h.Menu.GetByID(ctx, *body.ItemID)
	if err == repository.ErrMenuItemNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not look up menu item"})
	}

	order := model.Order{
		UserID:   *body.UserID,
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: *body.Quantity,
	}
	if err := h.Orders.Create(ctx, &order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create order"})
	}
	h.publishPlaced(order, true)
	return c.JSON(http.StatusCreated, echo.Map{"message": "Order created successfully"})
}

// ListOrders handles GET /order/view and returns every order,
// unfiltered and unpaginated.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.Orders.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list orders"})
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{
			UserID:   o.UserID,
			ItemID:   o.ItemID,
			ItemName: o.ItemName,
			Quantity: o.Quantity,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) publishPlaced(o model.Order, checked bool) {
	if h.Events == nil {
		return
	}
	ev := queue.OrderPlacedEvent{
		OrderID:  o.ID,
		UserID:   o.UserID,
		ItemID:   o.ItemID,
		ItemName: o.ItemName,
		Quantity: o.Quantity,
		Checked:  checked,
		PlacedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = h.Events.OrderPlaced(context.Background(), ev) }()
}
