// Package actorrepo persists actors with GORM. The role-specific profile is
// flattened into nullable columns of a single actors table.
package actorrepo

import (
	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ActorDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Phone   string     `gorm:"type:varchar(32)"`
	Email   string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role    string     `gorm:"type:varchar(16);not null;index"`
	Vehicle *string    `gorm:"type:varchar(64)"`
	ZoneID  *uuid.UUID `gorm:"type:uuid"`
	Address *string    `gorm:"type:text"`
}

func (ActorDTO) TableName() string {
	return "actors"
}

func fromDomain(a *actor.Actor) ActorDTO {
	dto := ActorDTO{
		ID:    a.ID().Bytes(),
		Name:  a.Name(),
		Phone: a.Phone(),
		Email: a.Email(),
		Role:  a.Role().String(),
	}

	switch p := a.Profile().(type) {
	case actor.CourierProfile:
		vehicle := p.Vehicle
		dto.Vehicle = &vehicle
		if p.ZoneID != nil {
			raw := p.ZoneID.Bytes()
			dto.ZoneID = &raw
		}
	case actor.AddressProfile:
		address := p.Address
		dto.Address = &address
	}

	return dto
}

func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := actor.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var profile actor.Profile
	switch role {
	case actor.RoleCourier:
		cp := actor.CourierProfile{Vehicle: deref(dto.Vehicle)}
		if dto.ZoneID != nil {
			zoneID, zoneErr := kernel.UUIDFromBytes(dto.ZoneID[:])
			if zoneErr != nil {
				return nil, zoneErr
			}
			cp.ZoneID = &zoneID
		}
		profile = cp
	case actor.RoleSender, actor.RoleRecipient:
		profile = actor.AddressProfile{Address: deref(dto.Address)}
	default:
		profile = actor.StaffProfile{}
	}

	contact := actor.Contact{Name: dto.Name, Phone: dto.Phone, Email: dto.Email}
	return actor.RestoreActor(id, contact, role, profile)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
