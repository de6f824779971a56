package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// doJSON builds an echo context for a JSON request and returns it
// with the recorder capturing the response.
func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestReservationCreate(t *testing.T) {
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	c, rec := doJSON(e, http.MethodPost, "/reservations", `{"user_id":1,"datetime":"2024-11-26"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var resp struct {
		Message       string `json:"message"`
		ReservationID int64  `json:"reservation_id"`
	}
	decodeBody(t, rec, &resp)
	if resp.ReservationID == 0 {
		t.Fatalf("expected a numeric reservation_id, got %q", rec.Body.String())
	}

	created, err := store.GetByID(c.Request().Context(), resp.ReservationID)
	if err != nil {
		t.Fatalf("created reservation not found in store: %v", err)
	}
	if created.Status != "confirmed" {
		t.Fatalf("new reservation status = %q, want confirmed", created.Status)
	}
	if created.Date.Format("2006-01-02") != "2024-11-26" {
		t.Fatalf("stored date = %s", created.Date.Format("2006-01-02"))
	}
}

func TestReservationCreateRejectsBadDates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "day out of range", body: `{"user_id":1,"datetime":"2024-11-31"}`},
		{name: "february 30th", body: `{"user_id":1,"datetime":"2024-02-30"}`},
		{name: "wrong pattern", body: `{"user_id":1,"datetime":"26-11-2024"}`},
		{name: "missing datetime", body: `{"user_id":1}`},
		{name: "missing user_id", body: `{"datetime":"2024-11-26"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			store := &fakeReservationStore{}
			h := NewReservationHandler(store, nil)

			c, rec := doJSON(e, http.MethodPost, "/reservations", tt.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
			if len(store.rows) != 0 {
				t.Fatalf("rejected request created %d rows", len(store.rows))
			}
		})
	}
}

func TestReservationModifyNotFound(t *testing.T) {
	e := echo.New()
	h := NewReservationHandler(&fakeReservationStore{}, nil)

	c, rec := doJSON(e, http.MethodPut, "/reservations/999", `{"datetime":"2024-12-01","status":"confirmed"}`)
	c.SetParamNames("id")
	c.SetParamValues("999")
	if err := h.Modify(c); err != nil {
		t.Fatalf("Modify returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestReservationModifyStatusOnlyKeepsDate(t *testing.T) {
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	c, _ := doJSON(e, http.MethodPost, "/reservations", `{"user_id":7,"datetime":"2024-11-26"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	c, rec := doJSON(e, http.MethodPut, "/reservations/1", `{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Modify(c); err != nil {
		t.Fatalf("Modify returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	got, err := store.GetByID(c.Request().Context(), 1)
	if err != nil {
		t.Fatalf("reservation disappeared: %v", err)
	}
	if got.Status != "pending" {
		t.Fatalf("status = %q, want pending", got.Status)
	}
	if got.Date.Format("2006-01-02") != "2024-11-26" {
		t.Fatalf("date changed to %s on a status-only modify", got.Date.Format("2006-01-02"))
	}
}

func TestReservationModifyStoresStatusVerbatim(t *testing.T) {
	// Status membership is deliberately unvalidated on modify: any
	// string the caller sends is stored as-is.
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	c, _ := doJSON(e, http.MethodPost, "/reservations", `{"user_id":7,"datetime":"2024-11-26"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	c, rec := doJSON(e, http.MethodPut, "/reservations/1", `{"status":"no-show"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Modify(c); err != nil {
		t.Fatalf("Modify returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	got, _ := store.GetByID(c.Request().Context(), 1)
	if got.Status != "no-show" {
		t.Fatalf("status = %q, want the verbatim no-show", got.Status)
	}
}

func TestReservationModifyBadDateLeavesRecordUnchanged(t *testing.T) {
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	c, _ := doJSON(e, http.MethodPost, "/reservations", `{"user_id":7,"datetime":"2024-11-26"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	c, rec := doJSON(e, http.MethodPut, "/reservations/1", `{"datetime":"2024-02-30","status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Modify(c); err != nil {
		t.Fatalf("Modify returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	got, _ := store.GetByID(c.Request().Context(), 1)
	if got.Status != "confirmed" || got.Date.Format("2006-01-02") != "2024-11-26" {
		t.Fatalf("record changed despite rejected date: %+v", got)
	}
}

func TestReservationCancelRemovesRow(t *testing.T) {
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	c, _ := doJSON(e, http.MethodPost, "/reservations", `{"user_id":3,"datetime":"2024-11-26"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	c, rec := doJSON(e, http.MethodDelete, "/reservations/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	// A second cancel and a modify must both report not found.
	c, rec = doJSON(e, http.MethodDelete, "/reservations/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat cancel status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	c, rec = doJSON(e, http.MethodGet, "/reservations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var listed []reservationResponse
	decodeBody(t, rec, &listed)
	if len(listed) != 0 {
		t.Fatalf("cancelled reservation still listed: %+v", listed)
	}
}

func TestReservationListIsIdempotent(t *testing.T) {
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	for _, body := range []string{
		`{"user_id":1,"datetime":"2024-11-26"}`,
		`{"user_id":2,"datetime":"2024-12-01"}`,
	} {
		c, _ := doJSON(e, http.MethodPost, "/reservations", body)
		if err := h.Create(c); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	c, rec1 := doJSON(e, http.MethodGet, "/reservations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	c, rec2 := doJSON(e, http.MethodGet, "/reservations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("repeated List differs:\n%s\n%s", rec1.Body.String(), rec2.Body.String())
	}

	var listed []reservationResponse
	decodeBody(t, rec1, &listed)
	if len(listed) != 2 {
		t.Fatalf("listed %d reservations, want 2", len(listed))
	}
	if listed[0].Datetime != "2024-11-26" {
		t.Fatalf("datetime = %q, want the bare YYYY-MM-DD form", listed[0].Datetime)
	}
}

func TestReservationListByUser(t *testing.T) {
	e := echo.New()
	store := &fakeReservationStore{}
	h := NewReservationHandler(store, nil)

	c, _ := doJSON(e, http.MethodPost, "/reservations", `{"user_id":5,"datetime":"2024-11-26"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	c, rec := doJSON(e, http.MethodGet, "/customers/reservations/5", "")
	c.SetParamNames("user_id")
	c.SetParamValues("5")
	if err := h.ListByUser(c); err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var listed []reservationResponse
	decodeBody(t, rec, &listed)
	if len(listed) != 1 || listed[0].UserID != 5 {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	// A user with no reservations gets 404, not an empty array.
	c, rec = doJSON(e, http.MethodGet, "/customers/reservations/42", "")
	c.SetParamNames("user_id")
	c.SetParamValues("42")
	if err := h.ListByUser(c); err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
