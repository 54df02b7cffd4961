// Package access answers parcel-level authorization questions for an authenticated
// principal. Role-level route policy is enforced at the HTTP edge; this package only
// knows about the relationship between a principal and a particular parcel.
package access

import (
	"context"
	"errors"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"go.uber.org/zap"
)

// ParcelLookup resolves a parcel by id. ports.ParcelRepository satisfies it.
type ParcelLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}

// Guard holds no state besides its lookup. Every predicate is false for an anonymous
// principal or a parcel that cannot be resolved.
type Guard struct {
	parcels ParcelLookup
	log     *zap.Logger
}

func NewGuard(parcels ParcelLookup, log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{parcels: parcels, log: log.Named("access")}
}

// IsOwner reports whether the principal sent the parcel.
func (g *Guard) IsOwner(ctx context.Context, parcelID kernel.UUID, principal actor.Principal) bool {
	p, ok := g.resolve(ctx, parcelID, principal)
	return ok && p.IsSender(principal.ID())
}

// IsAssignedCourier is false while no courier is assigned.
func (g *Guard) IsAssignedCourier(ctx context.Context, parcelID kernel.UUID, principal actor.Principal) bool {
	p, ok := g.resolve(ctx, parcelID, principal)
	return ok && p.IsAssignedCourier(principal.ID())
}

// CanAccess lets managers, the sender, the recipient and the assigned courier read a parcel.
func (g *Guard) CanAccess(ctx context.Context, parcelID kernel.UUID, principal actor.Principal) bool {
	p, ok := g.resolve(ctx, parcelID, principal)
	if !ok {
		return false
	}
	if principal.HasRole(actor.RoleManager) {
		return true
	}

	id := principal.ID()
	return p.IsSender(id) || p.IsRecipient(id) || p.IsAssignedCourier(id)
}

// CanUpdateStatus lets managers and the assigned courier change the status.
func (g *Guard) CanUpdateStatus(ctx context.Context, parcelID kernel.UUID, principal actor.Principal) bool {
	p, ok := g.resolve(ctx, parcelID, principal)
	if !ok {
		return false
	}
	return principal.HasRole(actor.RoleManager) || p.IsAssignedCourier(principal.ID())
}

// Exists reports whether the parcel resolves, independent of any principal.
func (g *Guard) Exists(ctx context.Context, parcelID kernel.UUID) bool {
	_, ok := g.lookup(ctx, parcelID)
	return ok
}

func (g *Guard) resolve(ctx context.Context, parcelID kernel.UUID, principal actor.Principal) (*parcel.Parcel, bool) {
	if !principal.IsAuthenticated() {
		return nil, false
	}
	return g.lookup(ctx, parcelID)
}

func (g *Guard) lookup(ctx context.Context, parcelID kernel.UUID) (*parcel.Parcel, bool) {
	if parcelID.Validate() != nil {
		return nil, false
	}

	p, err := g.parcels.Get(ctx, parcelID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			g.log.Warn("parcel lookup failed", zap.String("parcel_id", parcelID.String()), zap.Error(err))
		}
		return nil, false
	}
	return p, true
}
