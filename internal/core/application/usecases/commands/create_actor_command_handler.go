package commands

import (
	"context"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/pkg/errs"
)

// CreateActorCommandHandler stores a new actor after checking that its email is free
// and, for a courier, that its zone exists.
type CreateActorCommandHandler struct {
	uowFactory ActorUoWFactory
}

func NewCreateActorCommandHandler(uowFactory ActorUoWFactory) CreateActorCommandHandler {
	return CreateActorCommandHandler{uowFactory: uowFactory}
}

func (h *CreateActorCommandHandler) Handle(ctx context.Context, cmd CreateActorCommand) (*actor.Actor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actors := uow.ActorRepository()
	taken, err := actors.ExistsByEmail(ctx, cmd.Contact().Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewRuleViolationError("email is already registered")
	}

	if cmd.Role() == actor.RoleCourier && cmd.ZoneID() != nil {
		if _, err = uow.ZoneRepository().Get(ctx, *cmd.ZoneID()); err != nil {
			return nil, err
		}
	}

	a, err := buildActor(cmd)
	if err != nil {
		return nil, err
	}

	if err = actors.Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func buildActor(cmd CreateActorCommand) (*actor.Actor, error) {
	switch cmd.Role() {
	case actor.RoleAdministrator:
		return actor.NewAdministrator(cmd.ActorID(), cmd.Contact())
	case actor.RoleManager:
		return actor.NewManager(cmd.ActorID(), cmd.Contact())
	case actor.RoleCourier:
		return actor.NewCourier(cmd.ActorID(), cmd.Contact(), cmd.Vehicle(), cmd.ZoneID())
	case actor.RoleSender:
		return actor.NewSender(cmd.ActorID(), cmd.Contact(), cmd.Address())
	case actor.RoleRecipient:
		return actor.NewRecipient(cmd.ActorID(), cmd.Contact(), cmd.Address())
	default:
		return nil, cmd.Role().Validate()
	}
}
