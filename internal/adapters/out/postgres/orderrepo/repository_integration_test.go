package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ridehail/internal/adapters/out/postgres/orderrepo"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), "2024-03-15")
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.True(got.IsRider(o.RiderID()))
	suite.Equal(o.TripID(), got.TripID())
	suite.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got.Date())
	suite.Equal(order.Pending, got.Status())
	suite.Nil(got.DriverID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_WritesDriverAndStatus() {
	ctx := context.Background()
	o := suite.addOrder(kernel.NewUUID(), "2024-01-01")

	driverID := kernel.NewUUID()
	suite.Require().NoError(o.Accept(driverID))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, o, order.Pending))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OnGoing, got.Status())
	suite.True(got.IsDriver(driverID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_StaleExpectation_Conflict() {
	ctx := context.Background()
	stored := suite.addOrder(kernel.NewUUID(), "2024-01-01")

	first, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Accept(kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, first, order.Pending))

	suite.Require().NoError(second.Cancel())
	err = suite.repository.UpdateIfStatus(ctx, second, order.Pending)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().ErrorIs(err, orderrepo.ErrStatusChanged)

	got, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OnGoing, got.Status())
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(riderID kernel.UUID, date string) *order.Order {
	d, err := order.ParseDate(date)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), riderID, kernel.NewUUID(), d)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(riderID kernel.UUID, date string) *order.Order {
	o := suite.newOrder(riderID, date)
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
