package queries_test

import (
	"context"
	"testing"
	"time"

	"ridehail/internal/adapters/out/postgres/orderrepo"
	"ridehail/internal/adapters/out/postgres/triprepo"
	"ridehail/internal/adapters/out/postgres/userrepo"
	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/model/trip"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type MockTokenVerifier struct{ mock.Mock }

func (m *MockTokenVerifier) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &triprepo.TripDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, trips, users").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_DriverSeesPendingPool() {
	riderA, riderB := kernel.NewUUID(), kernel.NewUUID()
	pendingA := suite.addOrder(riderA, "2024-01-02", order.Pending)
	pendingB := suite.addOrder(riderB, "2024-01-01", order.Pending)
	suite.addOrder(riderA, "2024-01-01", order.OnGoing)
	suite.addOrder(riderB, "2024-01-01", order.Canceled)

	query, err := queries.NewListOrdersQuery(suite.caller(kernel.NewUUID(), kernel.Driver))
	suite.Require().NoError(err)

	res, err := queries.NewListOrdersQueryHandler(suite.db, time.Second).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("get available orders successful", res.Message)
	suite.Require().Len(res.Orders, 2)
	suite.Equal(pendingB.ID(), res.Orders[0].ID)
	suite.Equal(pendingA.ID(), res.Orders[1].ID)
	for _, o := range res.Orders {
		suite.Equal(order.Pending, o.Status)
		suite.Nil(o.DriverID)
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_RiderSeesOwnHistory() {
	rider := kernel.NewUUID()
	suite.addOrder(rider, "2024-01-01", order.Pending)
	ongoing := suite.addOrder(rider, "2024-01-02", order.OnGoing)
	suite.addOrder(rider, "2024-01-03", order.Finished)
	suite.addOrder(kernel.NewUUID(), "2024-01-01", order.Pending)

	query, err := queries.NewListOrdersQuery(suite.caller(rider, kernel.Rider))
	suite.Require().NoError(err)

	res, err := queries.NewListOrdersQueryHandler(suite.db, time.Second).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("get your orders successful", res.Message)
	suite.Require().Len(res.Orders, 3)
	for _, o := range res.Orders {
		suite.Equal(rider, o.RiderID)
	}
	suite.Equal(ongoing.ID(), res.Orders[1].ID)
	suite.Require().NotNil(res.Orders[1].DriverID)
	suite.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), res.Orders[1].Date)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_UnresolvedCaller() {
	_, err := queries.NewListOrdersQuery(kernel.Caller{})
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllTrips() {
	ctx := context.Background()
	repo := triprepo.NewGormTripRepository(suite.db)
	t, err := trip.NewTrip(kernel.NewUUID(), "Station", "Airport", trip.DefaultPrice)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, t))

	trips, err := queries.NewGetAllTripsQueryHandler(suite.db, time.Second).Handle(ctx, queries.NewGetAllTripsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(trips, 1)
	suite.Equal(queries.TripView{ID: t.ID(), Origin: "Station", Destination: "Airport", Price: trip.DefaultPrice}, trips[0])
}

func (suite *QueriesIntegrationTestSuite) TestGetAllTrips_Empty() {
	trips, err := queries.NewGetAllTripsQueryHandler(suite.db, time.Second).
		Handle(context.Background(), queries.NewGetAllTripsQuery())
	suite.Require().NoError(err)
	suite.NotNil(trips)
	suite.Empty(trips)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllUsers() {
	driver := suite.addUser("gina", kernel.Driver)
	rider := suite.addUser("abe", kernel.Rider)

	users, err := queries.NewGetAllUsersQueryHandler(suite.db, time.Second).
		Handle(context.Background(), queries.NewGetAllUsersQuery())
	suite.Require().NoError(err)
	suite.Equal([]queries.UserView{
		{ID: rider.ID(), Name: "abe", Role: kernel.Rider},
		{ID: driver.ID(), Name: "gina", Role: kernel.Driver},
	}, users)
}

func (suite *QueriesIntegrationTestSuite) TestResolveCaller() {
	u := suite.addUser("hal", kernel.Driver)
	ghost := kernel.NewUUID()

	verifier := new(MockTokenVerifier)
	verifier.On("Verify", "good").Return(u.ID(), nil)
	verifier.On("Verify", "ghost").Return(ghost, nil)
	verifier.On("Verify", "bad").Return(nil, errs.NewUnauthenticatedError("invalid token"))
	handler := queries.NewResolveCallerQueryHandler(suite.db, verifier, time.Second)

	query, err := queries.NewResolveCallerQuery("good")
	suite.Require().NoError(err)
	caller, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(u.ID(), caller.ID())
	suite.Equal(kernel.Driver, caller.Role())

	query, err = queries.NewResolveCallerQuery("ghost")
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, queries.ErrUnknownUser)

	query, err = queries.NewResolveCallerQuery("bad")
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)

	_, err = queries.NewResolveCallerQuery("  ")
	suite.Require().ErrorIs(err, queries.ErrMissingToken)
}

func (suite *QueriesIntegrationTestSuite) TestCountOrdersByStatus() {
	rider := kernel.NewUUID()
	suite.addOrder(rider, "2024-01-01", order.Pending)
	suite.addOrder(rider, "2024-01-01", order.Pending)
	suite.addOrder(rider, "2024-01-01", order.Finished)

	counts, err := queries.NewCountOrdersByStatusQueryHandler(suite.db, time.Second).
		Handle(context.Background(), queries.NewCountOrdersByStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(map[order.Status]int64{
		order.Pending:  2,
		order.OnGoing:  0,
		order.Finished: 1,
		order.Canceled: 0,
	}, counts)
}

func (suite *QueriesIntegrationTestSuite) TestNotConstructedQueries() {
	ctx := context.Background()
	_, err := queries.NewListOrdersQueryHandler(suite.db, time.Second).Handle(ctx, queries.ListOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)

	_, err = queries.NewGetAllUsersQueryHandler(suite.db, time.Second).Handle(ctx, queries.GetAllUsersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllUsersQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) caller(id kernel.UUID, role kernel.Role) kernel.Caller {
	c, err := kernel.NewCaller(id, role)
	suite.Require().NoError(err)
	return c
}

func (suite *QueriesIntegrationTestSuite) addOrder(riderID kernel.UUID, date string, status order.Status) *order.Order {
	d, err := order.ParseDate(date)
	suite.Require().NoError(err)

	var driverID *kernel.UUID
	if status == order.OnGoing || status == order.Finished {
		id := kernel.NewUUID()
		driverID = &id
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), riderID, kernel.NewUUID(), driverID, d, status)
	suite.Require().NoError(err)

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, nopTracker{}).Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) addUser(name string, role kernel.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), name, "hash", role)
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(context.Background(), u))
	return u
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
