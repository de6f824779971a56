package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

func TestPlaceOrderUncheckedTrustsCallerName(t *testing.T) {
	e := echo.New()
	orders := &fakeOrderStore{}
	menu := &fakeMenuStore{} // empty catalog on purpose
	h := NewOrderHandler(orders, menu, nil)

	c, rec := doJSON(e, http.MethodPost, "/order",
		`{"user_id":1,"item_id":99,"item_name":"Phantom Curry","quantity":2}`)
	if err := h.PlaceOrder(c); err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(orders.rows) != 1 {
		t.Fatalf("stored %d orders, want 1", len(orders.rows))
	}
	got := orders.rows[0]
	if got.ItemID != 99 || got.ItemName != "Phantom Curry" || got.Quantity != 2 {
		t.Fatalf("stored order = %+v", got)
	}
}

func TestPlaceOrderCheckedRejectsUnknownItem(t *testing.T) {
	e := echo.New()
	orders := &fakeOrderStore{}
	menu := &fakeMenuStore{}
	h := NewOrderHandler(orders, menu, nil)

	c, rec := doJSON(e, http.MethodPost, "/customers/order",
		`{"user_id":1,"item_id":99,"quantity":2}`)
	if err := h.PlaceOrderChecked(c); err != nil {
		t.Fatalf("PlaceOrderChecked returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(orders.rows) != 0 {
		t.Fatalf("rejected order still stored a row: %+v", orders.rows)
	}
}

func TestCheckedAndUncheckedIntakeDiverge(t *testing.T) {
	// The same unknown item_id fails on the checked path and succeeds
	// on the unchecked one; the two entry points stay independently
	// reachable and behave differently.
	e := echo.New()
	orders := &fakeOrderStore{}
	menu := &fakeMenuStore{}
	h := NewOrderHandler(orders, menu, nil)

	c, rec := doJSON(e, http.MethodPost, "/customers/order",
		`{"user_id":1,"item_id":7,"quantity":1}`)
	if err := h.PlaceOrderChecked(c); err != nil {
		t.Fatalf("PlaceOrderChecked returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("checked intake status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	c, rec = doJSON(e, http.MethodPost, "/order",
		`{"user_id":1,"item_id":7,"item_name":"Off-menu Special","quantity":1}`)
	if err := h.PlaceOrder(c); err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("unchecked intake status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if len(orders.rows) != 1 || orders.rows[0].ItemName != "Off-menu Special" {
		t.Fatalf("unchecked intake rows = %+v", orders.rows)
	}
}

func TestPlaceOrderCheckedUsesCatalogName(t *testing.T) {
	e := echo.New()
	orders := &fakeOrderStore{}
	menu := &fakeMenuStore{}
	itemID, _ := menu.Create(context.Background(), "Masala Dosa", 6.50)
	h := NewOrderHandler(orders, menu, nil)

	c, rec := doJSON(e, http.MethodPost, "/customers/order",
		`{"user_id":4,"item_id":1,"quantity":3}`)
	if err := h.PlaceOrderChecked(c); err != nil {
		t.Fatalf("PlaceOrderChecked returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	got := orders.rows[0]
	if got.ItemID != itemID || got.ItemName != "Masala Dosa" {
		t.Fatalf("stored order = %+v, want catalog identity", got)
	}
}

func TestPlaceOrderQuantityValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "zero quantity", body: `{"user_id":1,"item_id":1,"item_name":"Idli","quantity":0}`},
		{name: "negative quantity", body: `{"user_id":1,"item_id":1,"item_name":"Idli","quantity":-2}`},
		{name: "missing quantity", body: `{"user_id":1,"item_id":1,"item_name":"Idli"}`},
		{name: "missing item_name", body: `{"user_id":1,"item_id":1,"quantity":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			orders := &fakeOrderStore{}
			h := NewOrderHandler(orders, &fakeMenuStore{}, nil)

			c, rec := doJSON(e, http.MethodPost, "/order", tt.body)
			if err := h.PlaceOrder(c); err != nil {
				t.Fatalf("PlaceOrder returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(orders.rows) != 0 {
				t.Fatalf("invalid order stored a row")
			}
		})
	}
}

func TestListOrders(t *testing.T) {
	e := echo.New()
	orders := &fakeOrderStore{
		rows: []model.Order{
			{ID: 1, UserID: 1, ItemID: 2, ItemName: "Samosa", Quantity: 4},
			{ID: 2, UserID: 9, ItemID: 1, ItemName: "Chai", Quantity: 1},
		},
		nextID: 2,
	}
	h := NewOrderHandler(orders, &fakeMenuStore{}, nil)

	c, rec := doJSON(e, http.MethodGet, "/order/view", "")
	if err := h.ListOrders(c); err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var listed []orderResponse
	decodeBody(t, rec, &listed)
	if len(listed) != 2 {
		t.Fatalf("listed %d orders, want 2", len(listed))
	}
	if listed[0].ItemName != "Samosa" || listed[1].UserID != 9 {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	// Same request again with no mutation in between: identical output.
	c, rec2 := doJSON(e, http.MethodGet, "/order/view", "")
	if err := h.ListOrders(c); err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if rec.Body.String() != rec2.Body.String() {
		t.Fatalf("repeated ListOrders differs")
	}
}
