package model

import "time"

// Reservation status values. Create always starts a reservation as
// StatusConfirmed. Modify stores whatever status string the caller
// supplies; these constants name the three states the dashboards
// display but membership is not enforced on update.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCanceled  = "canceled"
)

// DateLayout is the calendar date pattern used on every external
// surface that carries a reservation date. There is no time-of-day
// component and no timezone; dashboards format dates into exactly
// this pattern before sending.
const DateLayout = "2006-01-02"

// Reservation records a customer's booking for a calendar date.
// The user reference is informational only; it is not enforced as a
// foreign key at the data layer.
//
// Fields:
//  ID     – primary key identifier.
//  UserID – user who made the reservation.
//  Date   – booking date (date only, stored as DATE).
//  Status – reservation state, confirmed by default.
type Reservation struct {
	ID     int64     // reservations.id
	UserID int64     // reservations.user_id
	Date   time.Time // reservations.res_date
	Status string    // reservations.status
}
