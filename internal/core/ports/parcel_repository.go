// Package ports defines the persistence contracts of the delivery domain.
// Adapters in internal/adapters/out implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
)

// ParcelRepository stores parcel aggregates together with their line items.
type ParcelRepository interface {
	// Add persists a new parcel and its line items.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update writes the mutable fields of an existing parcel (status, statusChangedAt,
	// courier and zone). It succeeds only if the stored version still equals
	// aggregate.Version(); otherwise it returns errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get loads a parcel with its line items in creation order.
	// Returns errs.ObjectNotFoundError when no parcel has the given id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes the parcel and its line items. History is removed separately
	// through HistoryRepository.DeleteByParcel.
	Delete(ctx context.Context, id kernel.UUID) error
}
