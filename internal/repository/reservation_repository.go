package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// ReservationRepo provides CRUD operations for reservations. Dates
// are stored in a DATE column, so the time-of-day portion of any
// time.Time passed in is discarded by the database. Rows come back
// in storage (primary key) order which keeps repeated listings
// identical when nothing changed in between.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Create inserts a new reservation and returns its generated id.
// Status is stored as given; Create callers default it to confirmed.
func (r *ReservationRepo) Create(ctx context.Context, userID int64, date time.Time, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reservations (user_id, res_date, status) VALUES (?, ?, ?)`,
		userID, date.Format(model.DateLayout), status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID returns a single reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (model.Reservation, error) {
	var rv model.Reservation
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, res_date, status FROM reservations WHERE id = ?`,
		id).Scan(&rv.ID, &rv.UserID, &rv.Date, &rv.Status)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrReservationNotFound
	}
	return rv, err
}

// Update overwrites the date and status of an existing reservation.
// Callers resolve the final values first (retaining prior fields when
// the request omits them) so this is a plain single-row write. When
// the id does not exist ErrReservationNotFound is returned.
func (r *ReservationRepo) Update(ctx context.Context, id int64, date time.Time, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET res_date = ?, status = ? WHERE id = ?`,
		date.Format(model.DateLayout), status, id)
	if err != nil {
		return err
	}
	// RowsAffected is 0 both for a missing row and for a no-op write;
	// callers fetch the row first, so a missing id never reaches here
	// silently.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr == ErrReservationNotFound {
			return ErrReservationNotFound
		}
	}
	return nil
}

// Delete removes a reservation row permanently. There is no soft
// delete and no audit trail; a cancelled-by-deletion reservation
// simply disappears from listings.
func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// ListAll returns every reservation in id order. No pagination, no
// filtering; the dataset is a single restaurant's bookings.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, res_date, status FROM reservations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListByUser returns the reservations belonging to one user, in id
// order. An empty slice is returned when the user has none; the
// handler maps that to its not-found signal.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID int64) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, res_date, status FROM reservations WHERE user_id = ? ORDER BY id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var rv model.Reservation
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Date, &rv.Status); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
