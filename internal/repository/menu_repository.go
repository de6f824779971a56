package repository

import (
	"context"
	"database/sql"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// MenuRepo manages the menu catalog. The order path only reads it;
// writes come through the admin surface.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo returns a new MenuRepo bound to the given database.
func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

// List returns the full menu in id order.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price FROM menu_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.MenuItem, 0)
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns one menu item or ErrMenuItemNotFound. The checked
// order intake relies on this lookup for referential consistency.
func (r *MenuRepo) GetByID(ctx context.Context, id int64) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price FROM menu_items WHERE id = ?`,
		id).Scan(&m.ID, &m.Name, &m.Price)
	if err == sql.ErrNoRows {
		return model.MenuItem{}, ErrMenuItemNotFound
	}
	return m, err
}

// Create inserts a new menu item and returns its generated id.
func (r *MenuRepo) Create(ctx context.Context, name string, price float64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_items (name, price) VALUES (?, ?)`, name, price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites name and price of an existing item.
func (r *MenuRepo) Update(ctx context.Context, id int64, name string, price float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET name = ?, price = ? WHERE id = ?`, name, price, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr == ErrMenuItemNotFound {
			return ErrMenuItemNotFound
		}
	}
	return nil
}

// Delete removes a menu item. Existing orders keep their denormalized
// item name, so deleting a dish never rewrites order history.
func (r *MenuRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
