package commands

import (
	"context"
)

// DeleteParcelCommandHandler removes a parcel with its history and line items.
// The three deletes run in one transaction, history first.
type DeleteParcelCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewDeleteParcelCommandHandler(uowFactory LifecycleUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()
	if _, err := parcels.Get(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := uow.HistoryRepository().DeleteByParcel(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := parcels.Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
