package commands

import (
	"context"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/parcel"
)

// AssignCourierCommandHandler attaches a courier to a parcel. The status is not
// touched and no history is written.
type AssignCourierCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewAssignCourierCommandHandler(uowFactory LifecycleUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ObjectNotFoundError when the parcel is missing or the courier
// id does not belong to an actor with role COURIER.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*parcel.Parcel, error) {
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

	parcels := uow.ParcelRepository()
	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = requireRole(ctx, uow.ActorRepository(), cmd.CourierID(), actor.RoleCourier, "courier"); err != nil {
		return nil, err
	}

	if err = p.AssignCourier(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = parcels.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
