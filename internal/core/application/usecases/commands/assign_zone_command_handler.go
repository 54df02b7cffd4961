package commands

import (
	"context"
	"errors"

	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"
)

// AssignZoneCommandHandler attaches a delivery zone to a parcel without writing history.
type AssignZoneCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewAssignZoneCommandHandler(uowFactory LifecycleUoWFactory) AssignZoneCommandHandler {
	return AssignZoneCommandHandler{uowFactory: uowFactory}
}

func (h *AssignZoneCommandHandler) Handle(ctx context.Context, cmd AssignZoneCommand) (*parcel.Parcel, error) {
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

	if _, err = uow.ZoneRepository().Get(ctx, cmd.ZoneID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("zone", cmd.ZoneID().String(),
				errors.New("zone not found for assignment"))
		}
		return nil, err
	}

	if err = p.AssignZone(cmd.ZoneID()); err != nil {
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
