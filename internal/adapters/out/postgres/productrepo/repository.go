// Package productrepo persists catalogue products with GORM.
package productrepo

import (
	"context"
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/product"
	"smartlogi/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Weight float64   `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ProductDTO{ID: aggregate.ID().Bytes(), Name: aggregate.Name(), Weight: aggregate.Weight()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.NewProduct(restoredID, dto.Name, dto.Weight)
}
