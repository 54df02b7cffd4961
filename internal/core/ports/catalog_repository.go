package ports

import (
	"context"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/product"
	"smartlogi/internal/core/domain/model/zone"
)

type ActorRepository interface {
	Add(ctx context.Context, aggregate *actor.Actor) error
	// Get returns errs.ObjectNotFoundError when no actor has the given id.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
	// ExistsByEmail compares case-insensitively.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

type ZoneRepository interface {
	Add(ctx context.Context, aggregate *zone.Zone) error
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)
}
