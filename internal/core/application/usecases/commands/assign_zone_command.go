package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var ErrAssignZoneCommandIsNotConstructed = errors.New(
	"AssignZoneCommand must be created via NewAssignZoneCommand constructor",
)

type AssignZoneCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	zoneID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignZoneCommand(parcelID, zoneID kernel.UUID) (AssignZoneCommand, error) {
	if err := errors.Join(parcelID.Validate(), zoneID.Validate()); err != nil {
		return AssignZoneCommand{}, err
	}

	return AssignZoneCommand{
		parcelID: parcelID,
		zoneID:   zoneID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignZoneCommand) Validate() error {
	return c.guard.Validate(ErrAssignZoneCommandIsNotConstructed)
}

func (c AssignZoneCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c AssignZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}
