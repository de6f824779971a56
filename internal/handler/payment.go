package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// PaymentHandler records and lists payments for staff. Settlement
// happens in an external processor; this surface only keeps the books.
type PaymentHandler struct {
	Payments PaymentStore
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments PaymentStore) *PaymentHandler {
	if payments == nil {
		panic("nil store passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: payments}
}

type paymentResponse struct {
	ID      int64   `json:"id"`
	OrderID int64   `json:"order_id"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// RecordPayment handles POST /staff/payments.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var body struct {
		OrderID *int64   `json:"order_id"`
		Amount  *float64 `json:"amount"`
		Status  *string  `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.OrderID == nil || body.Amount == nil || body.Status == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id, amount and status are required"})
	}

	p := model.Payment{OrderID: *body.OrderID, Amount: *body.Amount, Status: *body.Status}
	if err := h.Payments.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record payment"})
	}
	return c.JSON(http.StatusCreated, paymentResponse{ID: p.ID, OrderID: p.OrderID, Amount: p.Amount, Status: p.Status})
}

// ListPayments handles GET /staff/payments.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.Payments.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list payments"})
	}
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentResponse{ID: p.ID, OrderID: p.OrderID, Amount: p.Amount, Status: p.Status})
	}
	return c.JSON(http.StatusOK, out)
}
