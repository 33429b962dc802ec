package queries

import (
	"context"
	"errors"
	"time"

	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery reports how many orders sit in each status.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

type CountOrdersByStatusQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB, timeout time.Duration) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db, timeout: timeout}
}

// Handle always returns an entry for every known status, zero included.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, h.timeout)
	defer cancel()

	var rows []statusCountRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("status, count(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, unavailable("orders", err)
	}

	counts := map[order.Status]int64{
		order.Pending:  0,
		order.OnGoing:  0,
		order.Finished: 0,
		order.Canceled: 0,
	}
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = row.Total
	}

	return counts, nil
}

type statusCountRow struct {
	Status string
	Total  int64
}
