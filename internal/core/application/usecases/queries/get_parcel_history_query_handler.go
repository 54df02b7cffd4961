package queries

import (
	"context"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle reads the ledger fresh on every call. A parcel that does not exist yields
// ObjectNotFoundError rather than an empty list.
func (h GetParcelHistoryQueryHandler) Handle(ctx context.Context, query GetParcelHistoryQuery) ([]HistoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	parcelID := query.ParcelID()

	var count int64
	if err := db.Raw(`SELECT COUNT(*) FROM parcels WHERE id = ?`, parcelID.Bytes()).Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("parcel", parcelID.String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			status,
			changed_at,
			comment
		FROM parcel_history
		WHERE parcel_id = ?
		ORDER BY changed_at DESC, id DESC
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]HistoryView, 0)
	for rows.Next() {
		var (
			record    HistoryView
			id        uuid.UUID
			status    string
			changedAt time.Time
			comment   *string
		)

		if err = rows.Scan(&id, &status, &changedAt, &comment); err != nil {
			return nil, err
		}
		if record.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if record.Status, err = parcel.ParseStatus(status); err != nil {
			return nil, err
		}
		record.ChangedAt = changedAt.UTC()
		record.Comment = comment
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
