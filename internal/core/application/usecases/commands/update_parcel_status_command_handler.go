package commands

import (
	"context"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/domain/services"
	"smartlogi/internal/pkg/clock"
	"smartlogi/internal/pkg/errs"
)

// RejectedNotAssigned is the rejection code for a courier acting on someone else's parcel.
const RejectedNotAssigned = "not_assigned"

// UpdateParcelStatusCommandHandler applies a status change approved by the
// TransitionPolicy and appends the matching history record in the same transaction.
// A rejected change writes nothing.
type UpdateParcelStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	policy     services.TransitionPolicy
	clock      clock.Clock
	observer   TransitionObserver
}

// NewUpdateParcelStatusCommandHandler wires the handler. observer may be nil.
func NewUpdateParcelStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	policy services.TransitionPolicy,
	clk clock.Clock,
	observer TransitionObserver,
) UpdateParcelStatusCommandHandler {
	if observer == nil {
		observer = nopObserver{}
	}
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clk,
		observer:   observer,
	}
}

// Handle returns the updated parcel.
//
// Errors:
//   - errs.ObjectNotFoundError when the parcel does not exist
//   - errs.RuleViolationError carrying the policy reason when the change is denied
//   - errs.VersionIsInvalidError when the parcel changed since it was loaded
func (h *UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (*parcel.Parcel, error) {
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

	principal := cmd.Principal()
	decision := h.policy.Evaluate(p.Status(), cmd.Status(), principal.Role())
	if !decision.Allowed {
		h.observer.ObserveRejection(decision.Code)
		return nil, errs.NewRuleViolationError(decision.Reason)
	}

	if principal.HasRole(actor.RoleCourier) && !p.IsAssignedCourier(principal.ID()) {
		h.observer.ObserveRejection(RejectedNotAssigned)
		return nil, errs.NewRuleViolationError("courier is not assigned to this parcel")
	}

	from := p.Status()
	if err = p.ChangeStatus(decision.NewStatus, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = parcels.Update(ctx, p); err != nil {
		return nil, err
	}

	record, err := parcel.NewHistoryRecord(p.ID(), p.Status(), p.StatusChangedAt(), cmd.Comment())
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.ObserveTransition(from.String(), p.Status().String())
	return p, nil
}
