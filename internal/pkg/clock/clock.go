// Package clock abstracts wall-clock time so that timestamps written to parcels
// and history records can be controlled in tests.
package clock

import "time"

// Precision is the resolution timestamps are kept at. It matches PostgreSQL timestamptz.
const Precision = time.Microsecond

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns the system clock. Its readings are UTC and truncated to Precision.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}
