package queries

import (
	"errors"

	"smartlogi/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery counts parcels per status.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}
