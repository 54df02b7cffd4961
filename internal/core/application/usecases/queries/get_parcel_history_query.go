package queries

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery reads the status history of a parcel, newest record first.
//
//nolint:recvcheck //using for validation
type GetParcelHistoryQuery struct {
	parcelID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetParcelHistoryQuery(parcelID kernel.UUID) (GetParcelHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}
	return GetParcelHistoryQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}
