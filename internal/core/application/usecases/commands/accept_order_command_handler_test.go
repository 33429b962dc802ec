package commands_test

import (
	"context"
	"sync"
	"testing"

	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/services"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driver := newCaller(t, kernel.Driver)
	o := newOrder(t, kernel.NewUUID(), order.Pending, nil)
	cmd, err := commands.NewAcceptOrderCommand(driver, o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("UpdateIfStatus", ctx, o, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	accepted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.OnGoing, accepted.Status())
	assert.True(t, accepted.IsDriver(driver.ID()))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_RiderForbidden(t *testing.T) {
	cmd, err := commands.NewAcceptOrderCommand(newCaller(t, kernel.Rider), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewAcceptOrderCommandHandler(factory)
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, services.ErrOnlyDriversAccept)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptOrderCommandHandler_Handle_NotAvailable(t *testing.T) {
	for _, status := range []order.Status{order.OnGoing, order.Finished, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			var driverID *kernel.UUID
			if status != order.Canceled {
				d := kernel.NewUUID()
				driverID = &d
			}
			o := newOrder(t, kernel.NewUUID(), status, driverID)
			cmd, err := commands.NewAcceptOrderCommand(newCaller(t, kernel.Driver), o.ID())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAcceptOrderCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, order.ErrOrderNotAvailable)
			assert.Equal(t, driverID, o.DriverID())
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestAcceptOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(newCaller(t, kernel.Driver), id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// lockingStore holds one order row and serializes units of work that
// loaded it for update, the way a row lock does.
type lockingStore struct {
	row      sync.Mutex
	mu       sync.Mutex
	order    *order.Order
	riderID  kernel.UUID
	status   order.Status
	driverID *kernel.UUID
}

func (s *lockingStore) snapshot() (order.Status, *kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.driverID
}

type lockingUoW struct {
	store  *lockingStore
	locked bool
}

func (u *lockingUoW) Begin(context.Context) error { return nil }

func (u *lockingUoW) Commit(context.Context) error {
	u.release()
	return nil
}

func (u *lockingUoW) Rollback(context.Context) error {
	u.release()
	return nil
}

func (u *lockingUoW) release() {
	if u.locked {
		u.locked = false
		u.store.row.Unlock()
	}
}

func (u *lockingUoW) OrderRepository() ports.OrderRepository { return &lockingRepo{uow: u} }

type lockingRepo struct {
	ports.OrderRepository
	uow *lockingUoW
}

func (r *lockingRepo) GetForUpdate(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s := r.uow.store
	s.row.Lock()
	r.uow.locked = true

	status, driverID := s.snapshot()
	return order.RestoreOrder(id, s.riderID, s.order.TripID(), driverID, s.order.Date(), status)
}

func (r *lockingRepo) UpdateIfStatus(_ context.Context, o *order.Order, expected order.Status) error {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != expected {
		return errs.NewConflictError("order is not available")
	}
	s.status = o.Status()
	s.driverID = o.DriverID()
	return nil
}

type lockingFactory struct{ store *lockingStore }

func (f lockingFactory) Create() commands.OrderUoW { return &lockingUoW{store: f.store} }

func TestAcceptOrderCommandHandler_Handle_ConcurrentAcceptsOneWinner(t *testing.T) {
	const drivers = 16

	seed := newOrder(t, kernel.NewUUID(), order.Pending, nil)
	store := &lockingStore{order: seed, riderID: seed.RiderID(), status: order.Pending}
	h := commands.NewAcceptOrderCommandHandler(lockingFactory{store: store})

	callers := make([]kernel.Caller, drivers)
	for i := range callers {
		callers[i] = newCaller(t, kernel.Driver)
	}

	results := make([]error, drivers)
	var wg sync.WaitGroup
	for i, c := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewAcceptOrderCommand(c, seed.ID())
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = h.Handle(context.Background(), cmd)
		}()
	}
	wg.Wait()

	winner := -1
	for i, err := range results {
		if err == nil {
			require.Equal(t, -1, winner, "more than one driver accepted the order")
			winner = i
			continue
		}
		assert.ErrorIs(t, err, errs.ErrConflict)
	}
	require.NotEqual(t, -1, winner)

	status, driverID := store.snapshot()
	assert.Equal(t, order.OnGoing, status)
	require.NotNil(t, driverID)
	assert.True(t, driverID.IsEqual(callers[winner].ID()))
}
