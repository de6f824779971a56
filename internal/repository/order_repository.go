package repository

import (
	"context"
	"database/sql"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// OrderRepo records placed orders. Orders are append-only: there is
// no update or cancel, so the repo exposes only Create and ListAll.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo returns a new OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts an order row and populates the generated id on the
// provided record. The item name is stored exactly as passed in;
// whether it was verified against the catalog is the caller's
// concern, not the store's.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (user_id, item_id, item_name, quantity) VALUES (?, ?, ?, ?)`,
		o.UserID, o.ItemID, o.ItemName, o.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// ListAll returns every order in id order, unfiltered and unpaginated.
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, item_id, item_name, quantity FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ItemID, &o.ItemName, &o.Quantity); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
