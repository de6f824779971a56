// Package repository is the entity store: it exclusively owns every
// persisted row and exposes one small repo type per table. This file
// defines the sentinel errors shared across repos so that handlers
// can translate failure scenarios into distinct HTTP responses
// without inspecting SQL errors themselves.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation id does not
// exist. Handlers should translate this into an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrMenuItemNotFound is returned by the checked order path when the
// referenced menu item does not exist. Maps to HTTP 404.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrUserNotFound is returned when a user id or username has no row.
// Maps to HTTP 404.
var ErrUserNotFound = errors.New("user not found")

// ErrOrderNotFound is returned when an order id has no row. Maps to
// HTTP 404.
var ErrOrderNotFound = errors.New("order not found")

// ErrDetailsNotFound is returned when no restaurant detail row has
// been stored yet. Maps to HTTP 404.
var ErrDetailsNotFound = errors.New("restaurant details not found")
