package queries

import (
	"context"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewListOrdersQueryHandler(db *gorm.DB, timeout time.Duration) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, timeout: timeout}
}

type orderRow struct {
	ID       uuid.UUID
	RiderID  uuid.UUID
	DriverID *uuid.UUID
	TripID   uuid.UUID
	Date     time.Time
	Status   string
}

// Handle runs one filtered scan chosen by the caller's view policy.
// Rows come back oldest booking date first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	view := services.ViewFor(query.Caller())

	ctx, cancel := withTimeout(ctx, h.timeout)
	defer cancel()

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("id, rider_id, driver_id, trip_id, date, status").
		Scopes(orderFilterScope(view.Filter())).
		Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, unavailable("orders", err)
	}

	orders := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView()
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		orders = append(orders, v)
	}

	return ListOrdersQueryResponse{Message: view.Message(), Orders: orders}, nil
}

// orderFilterScope is the only translation of services.OrderFilter into SQL.
// Rows are ordered by booking date, then id.
func orderFilterScope(filter services.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			tx = tx.Where("status = ?", filter.Status.String())
		}
		if filter.RiderID != nil {
			tx = tx.Where("rider_id = ?", filter.RiderID.Bytes())
		}
		return tx.Order("date, id")
	}
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	riderID, err := kernel.UUIDFromBytes(r.RiderID[:])
	if err != nil {
		return OrderView{}, err
	}
	tripID, err := kernel.UUIDFromBytes(r.TripID[:])
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderView{}, err
	}

	var driverID *kernel.UUID
	if r.DriverID != nil {
		d, dErr := kernel.UUIDFromBytes(r.DriverID[:])
		if dErr != nil {
			return OrderView{}, dErr
		}
		driverID = &d
	}

	return OrderView{
		ID:       id,
		RiderID:  riderID,
		DriverID: driverID,
		TripID:   tripID,
		Date:     r.Date.UTC(),
		Status:   status,
	}, nil
}
