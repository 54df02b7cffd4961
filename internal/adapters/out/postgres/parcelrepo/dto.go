// Package parcelrepo persists parcel aggregates and their line items with GORM.
package parcelrepo

import (
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is a row of the parcels table.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Description     string     `gorm:"type:text"`
	Weight          float64    `gorm:"not null"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	Priority        string     `gorm:"type:varchar(16);not null"`
	DestinationCity string     `gorm:"type:varchar(128)"`
	SenderID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	ZoneID          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	StatusChangedAt time.Time  `gorm:"not null"`
	Version         int        `gorm:"not null;default:0"`

	LineItems []LineItemDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// LineItemDTO is a row of parcel_line_items. Position keeps the creation order.
type LineItemDTO struct {
	ParcelID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	UnitWeight float64   `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "parcel_line_items"
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	items := p.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, li := range items {
		lineItems = append(lineItems, LineItemDTO{
			ParcelID:   p.ID().Bytes(),
			Position:   i,
			ProductID:  li.ProductID().Bytes(),
			Quantity:   li.Quantity(),
			UnitWeight: li.UnitWeight(),
		})
	}

	return ParcelDTO{
		ID:              p.ID().Bytes(),
		Description:     p.Description(),
		Weight:          p.Weight(),
		Status:          p.Status().String(),
		Priority:        p.Priority().String(),
		DestinationCity: p.DestinationCity(),
		SenderID:        p.SenderID().Bytes(),
		RecipientID:     p.RecipientID().Bytes(),
		CourierID:       optionalID(p.CourierID()),
		ZoneID:          optionalID(p.ZoneID()),
		CreatedAt:       p.CreatedAt(),
		StatusChangedAt: p.StatusChangedAt(),
		Version:         p.Version(),
		LineItems:       lineItems,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := restoreOptionalID(dto.CourierID)
	if err != nil {
		return nil, err
	}
	zoneID, err := restoreOptionalID(dto.ZoneID)
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := parcel.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	items := make([]parcel.LineItem, 0, len(dto.LineItems))
	for _, row := range dto.LineItems {
		productID, idErr := kernel.UUIDFromBytes(row.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		li, liErr := parcel.NewLineItem(productID, row.Quantity, row.UnitWeight)
		if liErr != nil {
			return nil, liErr
		}
		items = append(items, li)
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:              id,
		SenderID:        senderID,
		RecipientID:     recipientID,
		CourierID:       courierID,
		ZoneID:          zoneID,
		Description:     dto.Description,
		DestinationCity: dto.DestinationCity,
		Priority:        priority,
		Status:          status,
		Weight:          dto.Weight,
		LineItems:       items,
		CreatedAt:       dto.CreatedAt,
		StatusChangedAt: dto.StatusChangedAt,
		Version:         dto.Version,
	})
}
