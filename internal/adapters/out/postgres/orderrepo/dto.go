// Package orderrepo persists the order aggregate in the orders table.
package orderrepo

import (
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Status is stored by its wire code.
type OrderDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RiderID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`
	TripID   uuid.UUID  `gorm:"type:uuid;not null"`
	Date     time.Time  `gorm:"type:date;not null"`
	Status   string     `gorm:"type:varchar(16);not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:       o.ID().Bytes(),
		RiderID:  o.RiderID().Bytes(),
		DriverID: driverColumn(o),
		TripID:   o.TripID().Bytes(),
		Date:     o.Date(),
		Status:   o.Status().String(),
	}
}

func driverColumn(o *order.Order) *uuid.UUID {
	id := o.DriverID()
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// toDomain rebuilds the aggregate through RestoreOrder, so rows that break the
// status/driver invariant are rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	y, m, d := dto.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return order.RestoreOrder(id, riderID, tripID, driverID, date, status)
}
