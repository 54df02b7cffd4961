// Package historyrepo persists the append-only parcel status ledger with GORM.
package historyrepo

import (
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// HistoryDTO is a row of parcel_history.
type HistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;not null;index:idx_parcel_history_parcel_changed,priority:1"`
	Status    string    `gorm:"type:varchar(16);not null"`
	ChangedAt time.Time `gorm:"not null;index:idx_parcel_history_parcel_changed,priority:2"`
	Comment   *string   `gorm:"type:text"`
}

func (HistoryDTO) TableName() string {
	return "parcel_history"
}

func fromDomain(record parcel.HistoryRecord) HistoryDTO {
	return HistoryDTO{
		ID:        record.ID().Bytes(),
		ParcelID:  record.ParcelID().Bytes(),
		Status:    record.Status().String(),
		ChangedAt: record.ChangedAt(),
		Comment:   record.Comment(),
	}
}

func toDomain(dto HistoryDTO) (parcel.HistoryRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.HistoryRecord{}, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return parcel.HistoryRecord{}, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return parcel.HistoryRecord{}, err
	}
	return parcel.RestoreHistoryRecord(id, parcelID, status, dto.ChangedAt, dto.Comment)
}
