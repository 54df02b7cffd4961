package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
)

// HistoryRepository is the append-only ledger of parcel status changes.
type HistoryRepository interface {
	// Append stores a new record. Records are never updated afterwards.
	Append(ctx context.Context, record parcel.HistoryRecord) error

	// ListByParcel returns the records of a parcel, newest first.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]parcel.HistoryRecord, error)

	// DeleteByParcel removes every record of a parcel. Only the parcel delete cascade calls it.
	DeleteByParcel(ctx context.Context, parcelID kernel.UUID) error
}
