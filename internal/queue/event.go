// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names. Both queues are declared durable by publisher and
// consumer alike so declaration order never matters.
const (
	ReservationConfirmedQueue = "reservation.confirmed"
	OrderPlacedQueue          = "order.placed"
)

// ReservationConfirmedEvent is published when a reservation is
// created. Downstream consumers can log or notify without querying
// the primary database.
type ReservationConfirmedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	UserID        int64  `json:"user_id"`
	Date          string `json:"datetime"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// OrderPlacedEvent is published when an order is recorded through
// either intake path. Checked reports whether the menu item was
// verified against the catalog before persisting.
type OrderPlacedEvent struct {
	OrderID  int64  `json:"order_id"`
	UserID   int64  `json:"user_id"`
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Checked  bool   `json:"checked"`
	PlacedAt string `json:"placed_at"`
}
