package cmd

import (
	"log/slog"

	httpin "ridehail/internal/adapters/in/http"
	"ridehail/internal/adapters/out/identity"
	"ridehail/internal/adapters/out/postgres"
	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/trip"
	"ridehail/internal/core/ports"
	"ridehail/internal/jobs"
	"ridehail/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *identity.JWTService
	hasher     identity.BcryptHasher
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	tokens, err := identity.NewJWTService(configs.JWTSecret, configs.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB,
			postgres.WithTimeout(configs.DBTimeout),
			postgres.WithOrderEventPublisher(publisher),
			postgres.WithLogger(logger),
		),
		tokens:   tokens,
		hasher:   identity.NewBcryptHasher(),
		registry: registry,
		metrics:  metrics.New(registry),
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.bookingUoWFactory(), trip.NewFixedPricing())
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() *commands.AcceptOrderCommandHandler {
	h := commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() *commands.FinishOrderCommandHandler {
	h := commands.NewFinishOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() *commands.RegisterUserCommandHandler {
	h := commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
	return &h
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() *commands.LoginUserCommandHandler {
	h := commands.NewLoginUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.configs.DBTimeout)
}

func (c *CompositionRoot) CreateGetAllTripsQueryHandler() queries.GetAllTripsQueryHandler {
	return queries.NewGetAllTripsQueryHandler(c.gormDB, c.configs.DBTimeout)
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.gormDB, c.configs.DBTimeout)
}

func (c *CompositionRoot) CreateResolveCallerQueryHandler() queries.ResolveCallerQueryHandler {
	return queries.NewResolveCallerQueryHandler(c.gormDB, c.tokens, c.configs.DBTimeout)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB, c.configs.DBTimeout)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		CancelOrder:  c.CreateCancelOrderCommandHandler(),
		AcceptOrder:  c.CreateAcceptOrderCommandHandler(),
		FinishOrder:  c.CreateFinishOrderCommandHandler(),
		RegisterUser: c.CreateRegisterUserCommandHandler(),
		LoginUser:    c.CreateLoginUserCommandHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		GetAllTrips:  c.CreateGetAllTripsQueryHandler(),
		GetAllUsers:  c.CreateGetAllUsersQueryHandler(),
	}, c.metrics)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:   c.logger,
		Metrics:  c.metrics,
		Gatherer: c.registry,
		Resolver: c.CreateResolveCallerQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.metrics.Orders,
		c.configs.BacklogReportSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
