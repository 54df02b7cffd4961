package commands

import (
	"context"
	"errors"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/ports"
	"smartlogi/internal/pkg/clock"
	"smartlogi/internal/pkg/errs"
)

// CreateParcelCommandHandler creates a parcel in status CREATED together with its
// first history record, in one transaction.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, clock.New())
//	cmd, _ := NewCreateParcelCommand(kernel.NewUUID(), senderID, recipientID,
//	    "books", parcel.PriorityNormal, "Marrakech",
//	    []ParcelItem{{ProductID: bookID, Quantity: 3}})
//
//	p, err := handler.Handle(ctx, cmd)
type CreateParcelCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      clock.Clock
}

func NewCreateParcelCommandHandler(uowFactory LifecycleUoWFactory, clk clock.Clock) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle resolves the participants and products, computes the weight from the
// catalogue and stores the parcel plus a CREATED history record.
//
// A sender or recipient that does not exist, or exists with another role, is an
// ObjectNotFoundError, as is an unknown product.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
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
	if err := requireRole(ctx, actors, cmd.SenderID(), actor.RoleSender, "sender"); err != nil {
		return nil, err
	}
	if err := requireRole(ctx, actors, cmd.RecipientID(), actor.RoleRecipient, "recipient"); err != nil {
		return nil, err
	}

	products := uow.ProductRepository()
	lineItems := make([]parcel.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		p, err := products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		li, err := parcel.NewLineItem(p.ID(), item.Quantity, p.Weight())
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}

	now := h.clock.Now()
	created, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.SenderID(),
		cmd.RecipientID(),
		cmd.Description(),
		cmd.Priority(),
		cmd.DestinationCity(),
		lineItems,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	comment := parcel.CreationComment
	record, err := parcel.NewHistoryRecord(created.ID(), created.Status(), created.StatusChangedAt(), &comment)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// requireRole loads the actor and reports a role mismatch the same way as a missing actor.
func requireRole(ctx context.Context, repo ports.ActorRepository, id kernel.UUID, role actor.Role, param string) error {
	a, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundErrorWithCause(param, id.String(), err)
		}
		return err
	}

	if !a.HasRole(role) {
		return errs.NewObjectNotFoundErrorWithCause(param, id.String(),
			errors.New("actor has role "+a.Role().String()))
	}
	return nil
}
