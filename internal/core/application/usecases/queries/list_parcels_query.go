package queries

import (
	"errors"

	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery pages through parcels, newest first, optionally restricted to a set
// of statuses.
//
//nolint:recvcheck //using for validation
type ListParcelsQuery struct {
	statuses []parcel.Status
	limit    int
	offset   int
	guard    guard.ConstructorGuard
}

// NewListParcelsQuery uses DefaultListLimit when limit is zero. Duplicate statuses
// are collapsed.
func NewListParcelsQuery(statuses []parcel.Status, limit, offset int) (ListParcelsQuery, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return ListParcelsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if offset < 0 {
		return ListParcelsQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	seen := make(map[parcel.Status]struct{}, len(statuses))
	filter := make([]parcel.Status, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		filter = append(filter, s)
	}

	return ListParcelsQuery{
		statuses: filter,
		limit:    limit,
		offset:   offset,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListParcelsQuery) Statuses() []parcel.Status {
	out := make([]parcel.Status, len(q.statuses))
	copy(out, q.statuses)
	return out
}

func (q ListParcelsQuery) Limit() int {
	return q.limit
}

func (q ListParcelsQuery) Offset() int {
	return q.offset
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}
