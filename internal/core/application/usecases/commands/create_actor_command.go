package commands

import (
	"errors"
	"strings"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var ErrCreateActorCommandIsNotConstructed = errors.New(
	"CreateActorCommand must be created via NewCreateActorCommand constructor",
)

// CreateActorCommand registers an actor of any role. Vehicle and zone only apply to
// couriers, address only to senders and recipients; they are ignored otherwise.
type CreateActorCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	role    actor.Role
	contact actor.Contact
	vehicle string
	zoneID  *kernel.UUID
	address string

	guard guard.ConstructorGuard
}

func NewCreateActorCommand(
	actorID kernel.UUID,
	role actor.Role,
	contact actor.Contact,
	vehicle string,
	zoneID *kernel.UUID,
	address string,
) (CreateActorCommand, error) {
	var emailErr error
	if strings.TrimSpace(contact.Email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}

	if err := errors.Join(actorID.Validate(), role.Validate(), emailErr); err != nil {
		return CreateActorCommand{}, err
	}

	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return CreateActorCommand{}, err
		}
	}

	return CreateActorCommand{
		actorID: actorID,
		role:    role,
		contact: contact,
		vehicle: strings.TrimSpace(vehicle),
		zoneID:  zoneID,
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateActorCommand) Validate() error {
	return c.guard.Validate(ErrCreateActorCommandIsNotConstructed)
}

func (c CreateActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateActorCommand) Role() actor.Role {
	return c.role
}

func (c CreateActorCommand) Contact() actor.Contact {
	return c.contact
}

func (c CreateActorCommand) Vehicle() string {
	return c.vehicle
}

func (c CreateActorCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

func (c CreateActorCommand) Address() string {
	return c.address
}
