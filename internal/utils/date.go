package utils // package utils provides small helpers shared by handlers

import (
	"errors"
	"time"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// ErrInvalidDate is returned for a date string that is not a valid
// calendar date in the exact YYYY-MM-DD pattern. This covers both
// malformed strings and semantically impossible dates such as
// 2024-02-30 or day 31 of a 30-day month.
var ErrInvalidDate = errors.New("invalid date format, please use YYYY-MM-DD")

// ParseReservationDate parses a reservation date string. The layout
// is fixed-width, so one-digit months or days, time components,
// timezone suffixes and trailing garbage are all rejected.
// time.Parse also validates day-of-month ranges, which gives the
// semantic check for free.
func ParseReservationDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
