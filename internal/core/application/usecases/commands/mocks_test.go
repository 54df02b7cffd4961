package commands_test

import (
	"context"

	"smartlogi/internal/adapters/out/postgres"
	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/domain/model/product"
	"smartlogi/internal/core/domain/model/zone"
	"smartlogi/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, r parcel.HistoryRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockHistoryRepository) ListByParcel(ctx context.Context, id kernel.UUID) ([]parcel.HistoryRecord, error) {
	args := m.Called(ctx, id)
	if records, ok := args.Get(0).([]parcel.HistoryRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHistoryRepository) DeleteByParcel(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Add(ctx context.Context, a *actor.Actor) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*actor.Actor); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockActorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*product.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if z, ok := args.Get(0).(*zone.Zone); ok {
		return z, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW serves as LifecycleUoW, ActorUoW and CatalogUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) ActorRepository() ports.ActorRepository {
	return m.Called().Get(0).(ports.ActorRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	return m.Called().Get(0).(ports.ZoneRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return m.Called().Get(0).(commands.LifecycleUoW)
}

type MockActorUoWFactory struct{ mock.Mock }

func (m *MockActorUoWFactory) Create() commands.ActorUoW {
	return m.Called().Get(0).(commands.ActorUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockTransitionObserver struct{ mock.Mock }

func (m *MockTransitionObserver) ObserveTransition(from, to string) { m.Called(from, to) }
func (m *MockTransitionObserver) ObserveRejection(reason string)    { m.Called(reason) }

// gormFactories adapts the GORM unit of work to the command factory interfaces.
type gormFactories struct {
	inner *postgres.GormUnitOfWorkFactory
}

func newGormFactories(db *gorm.DB) gormFactories {
	return gormFactories{inner: postgres.NewGormUnitOfWorkFactory(db)}
}

type lifecycleFactory func() commands.LifecycleUoW

func (f lifecycleFactory) Create() commands.LifecycleUoW { return f() }

type actorFactory func() commands.ActorUoW

func (f actorFactory) Create() commands.ActorUoW { return f() }

func (g gormFactories) lifecycle() commands.LifecycleUoWFactory {
	return lifecycleFactory(func() commands.LifecycleUoW { return g.inner.Create() })
}

func (g gormFactories) actors() commands.ActorUoWFactory {
	return actorFactory(func() commands.ActorUoW { return g.inner.Create() })
}
