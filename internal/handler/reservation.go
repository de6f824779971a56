package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
	"github.com/krishnasharma7/restaurant-management-system/internal/queue"
	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
	"github.com/krishnasharma7/restaurant-management-system/internal/utils"
)

// ReservationHandler is the reservation manager: it validates dates
// and status transitions and mutates reservation records through the
// entity store. It is stateless; every method reads and writes
// through Store only. Events may be nil, in which case no broker
// messages are published.
type ReservationHandler struct {
	Store  ReservationStore
	Events EventPublisher
}

// NewReservationHandler constructs a ReservationHandler. The store
// must be non-nil; the publisher is optional.
func NewReservationHandler(store ReservationStore, events EventPublisher) *ReservationHandler {
	if store == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{Store: store, Events: events}
}

// reservationResponse is the wire shape of a reservation. The
// datetime field carries the bare calendar date; dashboards depend on
// exactly this pattern.
type reservationResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Datetime string `json:"datetime"`
	Status   string `json:"status"`
}

func toReservationResponse(r model.Reservation) reservationResponse {
	return reservationResponse{
		ID:       r.ID,
		UserID:   r.UserID,
		Datetime: r.Date.Format(model.DateLayout),
		Status:   r.Status,
	}
}

// Create handles POST /reservations. The date must be a valid
// calendar date in the exact YYYY-MM-DD pattern; the new reservation
// always starts as confirmed. Returns 201 with the generated id.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		UserID   *int64  `json:"user_id"`
		Datetime *string `json:"datetime"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == nil || body.Datetime == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and datetime are required"})
	}
	date, err := utils.ParseReservationDate(*body.Datetime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	id, err := h.Store.Create(c.Request().Context(), *body.UserID, date, model.StatusConfirmed)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}

	if h.Events != nil {
		ev := queue.ReservationConfirmedEvent{
			ReservationID: id,
			UserID:        *body.UserID,
			Date:          date.Format(model.DateLayout),
			Status:        model.StatusConfirmed,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		// The request context ends with the response; publish on its own.
		go func() { _ = h.Events.ReservationConfirmed(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":        "Reservation created successfully",
		"reservation_id": id,
	})
}

// List handles GET /reservations and returns every reservation in
// storage order.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.Store.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list reservations"})
	}
	out := make([]reservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// ListByUser handles GET /customers/reservations/:user_id. A user
// with zero reservations gets 404 rather than an empty array; the
// customer dashboard relies on that signal.
func (h *ReservationHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	reservations, err := h.Store.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list reservations"})
	}
	if len(reservations) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no reservations found"})
	}
	out := make([]reservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Modify handles PUT /reservations/:id. Both fields are optional: an
// omitted field keeps its prior value. A supplied date is validated
// like Create and a failure leaves the record untouched. A supplied
// status is stored verbatim; membership in the confirmed/pending/
// canceled set is deliberately not checked, matching what external
// callers already depend on.
func (h *ReservationHandler) Modify(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		Datetime *string `json:"datetime"`
		Status   *string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	existing, err := h.Store.GetByID(ctx, id)
	if err == repository.ErrReservationNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load reservation"})
	}

	date := existing.Date
	if body.Datetime != nil {
		date, err = utils.ParseReservationDate(*body.Datetime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}
	status := existing.Status
	if body.Status != nil {
		status = *body.Status
	}

	if err := h.Store.Update(ctx, id, date, status); err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update reservation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation updated successfully"})
}

// Cancel handles DELETE /reservations/:id and removes the row
// permanently. Setting status to canceled via Modify is the other,
// independent cancellation path; the two are never merged.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if err := h.Store.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not cancel reservation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation canceled successfully"})
}
