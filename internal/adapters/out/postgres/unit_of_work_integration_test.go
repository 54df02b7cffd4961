package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "smartlogi/internal/adapters/out/postgres"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/core/ports"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite checks transaction boundaries against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *testdb.Container
	factory   ports.UnitOfWorkFactory
	fixture   testdb.Fixture
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(container.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.Truncate())
	suite.fixture = testdb.Seed(suite.T(), suite.container.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow2.HistoryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation() {
	ctx := context.Background()
	now := time.Now().UTC()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	p1 := suite.fixture.NewParcel(suite.T(), now)
	p2 := suite.fixture.NewParcel(suite.T(), now)
	suite.Require().NoError(uow1.ParcelRepository().Add(ctx, p1))
	suite.Require().NoError(uow2.ParcelRepository().Add(ctx, p2))

	_, err := uow1.ParcelRepository().Get(ctx, p2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "uncommitted rows of another unit are invisible")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.ParcelRepository().Get(ctx, p1.ID())
	suite.Require().NoError(err)
	_, err = fresh.ParcelRepository().Get(ctx, p2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHistoryFailureRollsBackParcelUpdate() {
	ctx := context.Background()
	now := time.Now().UTC()

	p := suite.fixture.NewParcel(suite.T(), now)
	suite.Require().NoError(suite.factory.Create().ParcelRepository().Add(ctx, p))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(parcel.Collected, now.Add(time.Second)))
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, loaded))

	// the zero record fails validation like a failed insert would
	suite.Require().Error(uow.HistoryRepository().Append(ctx, parcel.HistoryRecord{}))
	suite.Require().NoError(uow.Rollback(ctx))

	got, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Created, got.Status())
	suite.Equal(0, got.Version())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires Docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
