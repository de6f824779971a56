package repository

import (
	"context"
	"database/sql"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// RestaurantRepo manages the singleton restaurant detail record. Only
// the first row is ever meaningful; reads and writes target it
// directly.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo returns a new RestaurantRepo bound to the given database.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo { return &RestaurantRepo{db: db} }

// Get returns the detail row, or ErrDetailsNotFound when none has
// been stored yet.
func (r *RestaurantRepo) Get(ctx context.Context) (model.RestaurantDetail, error) {
	var d model.RestaurantDetail
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, location, contact FROM restaurant_details ORDER BY id LIMIT 1`).
		Scan(&d.ID, &d.Name, &d.Location, &d.Contact)
	if err == sql.ErrNoRows {
		return model.RestaurantDetail{}, ErrDetailsNotFound
	}
	return d, err
}

// Upsert writes the detail record, creating the row on first use and
// updating it afterwards.
func (r *RestaurantRepo) Upsert(ctx context.Context, d model.RestaurantDetail) (model.RestaurantDetail, error) {
	existing, err := r.Get(ctx)
	if err == ErrDetailsNotFound {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO restaurant_details (name, location, contact) VALUES (?, ?, ?)`,
			d.Name, d.Location, d.Contact)
		if err != nil {
			return model.RestaurantDetail{}, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return model.RestaurantDetail{}, err
		}
		d.ID = id
		return d, nil
	}
	if err != nil {
		return model.RestaurantDetail{}, err
	}
	d.ID = existing.ID
	_, err = r.db.ExecContext(ctx,
		`UPDATE restaurant_details SET name = ?, location = ?, contact = ? WHERE id = ?`,
		d.Name, d.Location, d.Contact, d.ID)
	if err != nil {
		return model.RestaurantDetail{}, err
	}
	return d, nil
}
