package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID     kernel.UUID
	name       string
	postalCode string

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(zoneID kernel.UUID, name, postalCode string) (CreateZoneCommand, error) {
	if err := zoneID.Validate(); err != nil {
		return CreateZoneCommand{}, err
	}
	return CreateZoneCommand{
		zoneID:     zoneID,
		name:       name,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c CreateZoneCommand) Name() string {
	return c.name
}

func (c CreateZoneCommand) PostalCode() string {
	return c.postalCode
}
