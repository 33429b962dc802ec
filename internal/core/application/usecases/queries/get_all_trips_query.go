package queries

import (
	"context"
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllTripsQueryIsNotConstructed = errors.New(
	"GetAllTripsQuery must be created via NewGetAllTripsQuery constructor",
)

// GetAllTripsQuery lists the trip catalog.
type GetAllTripsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllTripsQuery() GetAllTripsQuery {
	return GetAllTripsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllTripsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTripsQueryIsNotConstructed)
}

type TripView struct {
	ID          kernel.UUID
	Origin      string
	Destination string
	Price       int64
}

type GetAllTripsQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGetAllTripsQueryHandler(db *gorm.DB, timeout time.Duration) GetAllTripsQueryHandler {
	return GetAllTripsQueryHandler{db: db, timeout: timeout}
}

func (h GetAllTripsQueryHandler) Handle(ctx context.Context, query GetAllTripsQuery) ([]TripView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, h.timeout)
	defer cancel()

	var rows []tripRow
	err := h.db.WithContext(ctx).
		Table("trips").
		Select("id, origin, destination, price").
		Order("origin, destination, id").
		Scan(&rows).Error
	if err != nil {
		return nil, unavailable("trips", err)
	}

	trips := make([]TripView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		trips = append(trips, TripView{
			ID:          id,
			Origin:      row.Origin,
			Destination: row.Destination,
			Price:       row.Price,
		})
	}

	return trips, nil
}

type tripRow struct {
	ID          uuid.UUID
	Origin      string
	Destination string
	Price       int64
}
