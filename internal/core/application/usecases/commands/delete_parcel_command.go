package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return DeleteParcelCommand{}, err
	}
	return DeleteParcelCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
