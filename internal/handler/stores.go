package handler // handler implements the HTTP request surface

import (
	"context"
	"time"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
	"github.com/krishnasharma7/restaurant-management-system/internal/queue"
)

// The interfaces below describe what each handler needs from the
// entity store. The repository types satisfy them; tests substitute
// in-memory fakes. Handlers hold no state of their own beyond these
// injected dependencies.

// ReservationStore is the slice of the entity store the reservation
// handler depends on.
type ReservationStore interface {
	Create(ctx context.Context, userID int64, date time.Time, status string) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Reservation, error)
	Update(ctx context.Context, id int64, date time.Time, status string) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]model.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Reservation, error)
}

// OrderStore records orders. Orders are append-only.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	ListAll(ctx context.Context) ([]model.Order, error)
}

// MenuStore exposes the catalog. The order handler only reads it;
// the menu handler also manages it for admins.
type MenuStore interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (model.MenuItem, error)
	Create(ctx context.Context, name string, price float64) (int64, error)
	Update(ctx context.Context, id int64, name string, price float64) error
	Delete(ctx context.Context, id int64) error
}

// UserStore manages account rows for auth and the user endpoints.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash, role string) (int64, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id int64) error
}

// PaymentStore records and lists payments.
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	ListAll(ctx context.Context) ([]model.Payment, error)
}

// DetailStore manages the singleton restaurant detail record.
type DetailStore interface {
	Get(ctx context.Context) (model.RestaurantDetail, error)
	Upsert(ctx context.Context, d model.RestaurantDetail) (model.RestaurantDetail, error)
}

// EventPublisher forwards domain events to the message broker.
// Handlers treat publishing as fire-and-forget: a nil publisher or a
// failed publish never fails the request.
type EventPublisher interface {
	ReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error
	OrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error
}
