package historyrepo

import (
	"context"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
// It only ever inserts, reads and cascade-deletes rows.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, record parcel.HistoryRecord) error {
	if err := record.ParcelID().Validate(); err != nil {
		return err
	}
	if err := record.Status().Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByParcel returns the records newest first. An unknown parcel yields an empty slice.
func (r *GormHistoryRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]parcel.HistoryRecord, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("changed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]parcel.HistoryRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *GormHistoryRepository) DeleteByParcel(ctx context.Context, parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("parcel_id = ?", parcelID.Bytes()).Delete(&HistoryDTO{}).Error
}
