// Package postgres implements the unit of work over GORM and PostgreSQL.
//
// A unit of work owns one database transaction. Repositories obtained from it
// after Begin run inside that transaction. Every transaction is bounded by the
// factory timeout, both as a context deadline and as PostgreSQL
// statement and lock timeouts, so a stuck lock surfaces as errs.ErrUnavailable.
//
// Orders added or transitioned inside a unit of work are tracked and, once
// Commit succeeds, announced through the configured ports.OrderEventPublisher.
//
//	factory := NewGormUnitOfWorkFactory(db, WithTimeout(5*time.Second))
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ridehail/internal/adapters/out/postgres/orderrepo"
	"ridehail/internal/adapters/out/postgres/triprepo"
	"ridehail/internal/adapters/out/postgres/userrepo"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"

	"gorm.io/gorm"
)

// DefaultTimeout bounds a transaction when no WithTimeout option is given.
const DefaultTimeout = 5 * time.Second

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Option configures a GormUnitOfWorkFactory.
type Option func(*GormUnitOfWorkFactory)

// WithTimeout sets the upper bound of every transaction.
func WithTimeout(timeout time.Duration) Option {
	return func(f *GormUnitOfWorkFactory) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithOrderEventPublisher announces committed order changes through publisher.
func WithOrderEventPublisher(publisher ports.OrderEventPublisher) Option {
	return func(f *GormUnitOfWorkFactory) {
		if publisher != nil {
			f.publisher = publisher
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *GormUnitOfWorkFactory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	timeout   time.Duration
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:        db,
		timeout:   DefaultTimeout,
		publisher: noopPublisher{},
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "unit_of_work")
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		factory:           f,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and the aggregates it touched.
// It is not safe for concurrent use; each goroutine needs its own instance.
type GormUnitOfWork struct {
	factory           *GormUnitOfWorkFactory
	tx                *gorm.DB
	cancel            context.CancelFunc
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	txCtx, cancel := context.WithTimeout(ctx, uow.factory.timeout)
	tx := uow.factory.db.WithContext(txCtx).Begin()
	if tx.Error != nil {
		cancel()
		return errs.NewUnavailableError("database", tx.Error)
	}

	ms := uow.factory.timeout.Milliseconds()
	if err := tx.Exec(fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)).Error; err != nil {
		_ = tx.Rollback()
		cancel()
		return errs.NewUnavailableError("database", err)
	}
	if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = %d", ms)).Error; err != nil {
		_ = tx.Rollback()
		cancel()
		return errs.NewUnavailableError("database", err)
	}

	uow.tx = tx
	uow.cancel = cancel
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit makes the changes permanent and then publishes an OrderChanged event
// for every tracked order. Publishing failures are logged, not returned.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.release()
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return errs.NewUnavailableError("database", err)
	}

	uow.publish(ctx)
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when none is open, which deferred rollbacks after Commit ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.release()
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) release() {
	uow.tx = nil
	if uow.cancel != nil {
		uow.cancel()
		uow.cancel = nil
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.factory.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	return triprepo.NewGormTripRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// publish emits one event per order, carrying the order's final state.
func (uow *GormUnitOfWork) publish(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	seen := make(map[kernel.UUID]struct{}, len(tracked))
	at := uow.factory.now()
	for i := len(tracked) - 1; i >= 0; i-- {
		o, ok := tracked[i].Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, dup := seen[tracked[i].ID]; dup {
			continue
		}
		seen[tracked[i].ID] = struct{}{}

		event := ports.NewOrderChanged(o, at)
		if err := uow.factory.publisher.Publish(ctx, event); err != nil {
			uow.factory.logger.ErrorContext(ctx, "failed to publish order event",
				"order_id", event.OrderID,
				"status", event.Status,
				"error", err,
			)
		}
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ports.OrderChanged) error { return nil }
