package parcel

import (
	"fmt"
	"strings"

	"smartlogi/internal/pkg/errs"
)

// Status is the position of a parcel in its delivery lifecycle.
//
//	CREATED ──> COLLECTED ──> IN_WAREHOUSE ──> IN_TRANSIT ──> DELIVERED
//
// The chain is forward-only in practice, but intermediate steps may be skipped.
// DELIVERED is terminal.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Created
	Collected
	InWarehouse
	InTransit
	Delivered
)

var statusNames = map[Status]string{
	Created:     "CREATED",
	Collected:   "COLLECTED",
	InWarehouse: "IN_WAREHOUSE",
	InTransit:   "IN_TRANSIT",
	Delivered:   "DELIVERED",
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Collected, InWarehouse, InTransit, Delivered}
}

// ParseStatus maps a status name (case-insensitive) to its value.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further status change is accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
