package actorrepo

import (
	"context"
	"errors"
	"strings"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormActorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormActorRepository(db *gorm.DB, tracker aggregateTracker) *GormActorRepository {
	return &GormActorRepository{db: db, tracker: tracker}
}

func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByEmail matches the stored email, which is always lower case.
func (r *GormActorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ActorDTO{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
