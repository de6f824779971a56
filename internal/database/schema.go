package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaDDL creates every table the service touches. Statements are
// idempotent so the bootstrap can run on every start. No foreign key
// constraints are declared: cross-entity references (reservation to
// user, order to menu item) are informational and checked, where at
// all, in the request path.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		username VARCHAR(80) NOT NULL,
		password_hash VARCHAR(128) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'CUSTOMER'
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT NOT NULL,
		res_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		price DECIMAL(8,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT NOT NULL,
		item_id BIGINT NOT NULL,
		item_name VARCHAR(100) NOT NULL,
		quantity INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		order_id BIGINT NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_details (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		location VARCHAR(255) NOT NULL,
		contact VARCHAR(15) NOT NULL
	)`,
}

// EnsureSchema creates any missing tables. It is safe to call on
// every boot.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ResetOrders wipes the orders table. The original deployment did
// this implicitly on every boot; here it is an explicit startup hook
// that main invokes only when RESET_ORDERS_ON_BOOT is set.
func ResetOrders(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("reset orders: %w", err)
	}
	return nil
}
