// Package zonerepo persists delivery zones with GORM.
package zonerepo

import (
	"context"
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/zone"
	"smartlogi/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ZoneDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PostalCode string    `gorm:"type:varchar(16);not null"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

type GormZoneRepository struct {
	db *gorm.DB
}

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ZoneDTO{ID: aggregate.ID().Bytes(), Name: aggregate.Name(), PostalCode: aggregate.PostalCode()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return zone.NewZone(restoredID, dto.Name, dto.PostalCode)
}
