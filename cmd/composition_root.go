package cmd

import (
	"context"

	httpin "smartlogi/internal/adapters/in/http"
	"smartlogi/internal/adapters/out/postgres"
	"smartlogi/internal/core/application/access"
	"smartlogi/internal/core/application/usecases/commands"
	"smartlogi/internal/core/application/usecases/queries"
	"smartlogi/internal/core/domain/services"
	"smartlogi/internal/jobs"
	"smartlogi/internal/pkg/clock"
	"smartlogi/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	logger     *zap.Logger
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger, clk clock.Clock) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	m, err := metrics.New(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clk,
		logger:     logger,
		registry:   registry,
		metrics:    m,
	}, nil
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) actorUoWFactory() commands.ActorUoWFactory {
	return FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.lifecycleUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(
		c.lifecycleUoWFactory(),
		services.NewTransitionPolicy(),
		c.clock,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateAssignZoneCommandHandler() commands.AssignZoneCommandHandler {
	return commands.NewAssignZoneCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateCreateActorCommandHandler() commands.CreateActorCommandHandler {
	return commands.NewCreateActorCommandHandler(c.actorUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

// CreateAccessGuard reads parcels outside of any transaction.
func (c *CompositionRoot) CreateAccessGuard() *access.Guard {
	return access.NewGuard(c.uowFactory.Create().ParcelRepository(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateParcel:  c.CreateCreateParcelCommandHandler(),
		UpdateStatus:  c.CreateUpdateParcelStatusCommandHandler(),
		AssignCourier: c.CreateAssignCourierCommandHandler(),
		AssignZone:    c.CreateAssignZoneCommandHandler(),
		DeleteParcel:  c.CreateDeleteParcelCommandHandler(),
		CreateActor:   c.CreateCreateActorCommandHandler(),
		CreateProduct: c.CreateCreateProductCommandHandler(),
		CreateZone:    c.CreateCreateZoneCommandHandler(),
		GetParcel:     c.CreateGetParcelQueryHandler(),
		GetHistory:    c.CreateGetParcelHistoryQueryHandler(),
		ListParcels:   c.CreateListParcelsQueryHandler(),
	}, c.CreateAccessGuard())
}

func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	return httpin.NewAuthenticator(c.config.JWTSecret)
}

// CreateRouter assembles the echo instance serving the API.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	policy, err := httpin.NewRoutePolicy(c.logger)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(ctx, httpin.RouterConfig{
		Server:        c.CreateHTTPServer(),
		Authenticator: c.CreateAuthenticator(),
		Policy:        policy,
		Observer:      c.metrics,
		Gatherer:      c.registry,
		Logger:        c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	report := jobs.NewStatusReportJob(
		c.CreateGetStatusSummaryQueryHandler(),
		c.metrics,
		c.config.StatusReportSchedule,
		c.logger,
	)
	return jobs.NewJobManager(report)
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
