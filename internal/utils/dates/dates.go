// Package dates owns ISO-8601 date parsing and the inclusive date-window
// checks shared by the journal and the report generators.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for all dates accepted by the API.
const Layout = "2006-01-02"

// ErrInvalidDate indicates a date string that does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// Parse converts an ISO-8601 date string (YYYY-MM-DD) to a UTC time at
// midnight. Malformed input fails with ErrInvalidDate.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t.UTC(), nil
}

// OnOrBefore reports whether date falls on or before asOf.
func OnOrBefore(date, asOf time.Time) bool {
	return !date.After(asOf)
}

// InRange reports whether date falls within [start, end], inclusive on
// both ends.
func InRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
