package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand sets or replaces the courier of a parcel.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(parcelID, courierID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(parcelID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		parcelID:  parcelID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
