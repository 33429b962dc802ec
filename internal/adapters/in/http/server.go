package http

import (
	"context"
	"net/http"

	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/generated/servers"
	"ridehail/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.Booking, error)
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

type AcceptOrderHandler interface {
	Handle(ctx context.Context, cmd commands.AcceptOrderCommand) (*order.Order, error)
}

type FinishOrderHandler interface {
	Handle(ctx context.Context, cmd commands.FinishOrderCommand) (*order.Order, error)
}

type RegisterUserHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
}

type LoginUserHandler interface {
	Handle(ctx context.Context, cmd commands.LoginUserCommand) (commands.Session, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
}

type GetAllTripsHandler interface {
	Handle(ctx context.Context, query queries.GetAllTripsQuery) ([]queries.TripView, error)
}

type GetAllUsersHandler interface {
	Handle(ctx context.Context, query queries.GetAllUsersQuery) ([]queries.UserView, error)
}

// Handlers groups the use cases the HTTP API dispatches to.
type Handlers struct {
	CreateOrder  CreateOrderHandler
	CancelOrder  CancelOrderHandler
	AcceptOrder  AcceptOrderHandler
	FinishOrder  FinishOrderHandler
	RegisterUser RegisterUserHandler
	LoginUser    LoginUserHandler
	ListOrders   ListOrdersHandler
	GetAllTrips  GetAllTripsHandler
	GetAllUsers  GetAllUsersHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
	}
}

// GetOrders handles GET /api/orders. Drivers get the pending pool, riders
// get their own history.
func (s *Server) GetOrders(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewListOrdersQuery(caller)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	data := make([]servers.Order, len(result.Orders))
	for i, view := range result.Orders {
		data[i] = orderViewToResponse(view)
	}
	return ctx.JSON(http.StatusOK, servers.OrderListResponse{
		Message: result.Message,
		Data:    data,
	})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewCreateOrderCommand(caller, body.Origin, body.Destination, body.Date)
	if err != nil {
		return err
	}
	booking, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.countTransition(booking.Order)

	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{
		Msg:   "create order successful",
		Trip:  tripToResponse(booking.Trip),
		Order: orderToResponse(booking.Order),
	})
}

// CancelOrder handles PUT /api/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	caller, id, err := transitionArgs(ctx, orderId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(caller, id)
	if err != nil {
		return err
	}
	o, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.countTransition(o)
	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Msg:   "order canceled successfully",
		Order: orderToResponse(o),
	})
}

// AcceptOrder handles PUT /api/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId servers.OrderId) error {
	caller, id, err := transitionArgs(ctx, orderId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptOrderCommand(caller, id)
	if err != nil {
		return err
	}
	o, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.countTransition(o)
	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Msg:   "order accepted",
		Order: orderToResponse(o),
	})
}

// FinishOrder handles PUT /api/orders/{orderId}/finish.
func (s *Server) FinishOrder(ctx echo.Context, orderId servers.OrderId) error {
	caller, id, err := transitionArgs(ctx, orderId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewFinishOrderCommand(caller, id)
	if err != nil {
		return err
	}
	o, err := s.handlers.FinishOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.countTransition(o)
	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Msg:   "order status updated to finished",
		Order: orderToResponse(o),
	})
}

// GetTrips handles GET /api/trips.
func (s *Server) GetTrips(ctx echo.Context) error {
	if _, err := callerFrom(ctx); err != nil {
		return err
	}
	trips, err := s.handlers.GetAllTrips.Handle(ctx.Request().Context(), queries.NewGetAllTripsQuery())
	if err != nil {
		return err
	}

	data := make([]servers.Trip, len(trips))
	for i, view := range trips {
		data[i] = tripViewToResponse(view)
	}
	return ctx.JSON(http.StatusOK, servers.TripListResponse{
		Message: "get all trips successful",
		Data:    data,
	})
}

// GetUsers handles GET /api/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.handlers.GetAllUsers.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return err
	}

	data := make([]servers.User, len(users))
	for i, view := range users {
		data[i] = userViewToResponse(view)
	}
	return ctx.JSON(http.StatusOK, servers.UserListResponse{
		Msg:  "get all users successful",
		Data: data,
	})
}

// LoginUser handles POST /api/users/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	var body loginRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginUserCommand(body.Name, body.Password)
	if err != nil {
		return err
	}
	session, err := s.handlers.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Msg:   "login successful",
		Data:  userToResponse(session.User),
		Token: session.Token,
	})
}

// RegisterUser handles POST /api/users/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body registerRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(body.Name, body.Password, body.RoleID)
	if err != nil {
		return err
	}
	u, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.RegisterResponse{
		Msg:  "register successful",
		Data: userToResponse(u),
	})
}

func (s *Server) countTransition(o *order.Order) {
	if s.metrics == nil || o == nil {
		return
	}
	s.metrics.OrderTransitions.WithLabelValues(o.Status().String()).Inc()
}

func transitionArgs(ctx echo.Context, orderId servers.OrderId) (kernel.Caller, kernel.UUID, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return kernel.Caller{}, kernel.UUID{}, err
	}
	// A malformed id is left to the command constructor to report.
	id, _ := kernel.UUIDFromBytes(orderId[:])
	return caller, id, nil
}
