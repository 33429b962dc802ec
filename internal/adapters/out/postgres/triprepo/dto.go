// Package triprepo persists the trip catalog in the trips table.
package triprepo

import (
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

type TripDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Origin      string    `gorm:"not null"`
	Destination string    `gorm:"not null"`
	Price       int64     `gorm:"not null"`
}

func (TripDTO) TableName() string {
	return "trips"
}

func fromDomain(t *trip.Trip) TripDTO {
	return TripDTO{
		ID:          t.ID().Bytes(),
		Origin:      t.Origin(),
		Destination: t.Destination(),
		Price:       t.Price(),
	}
}

func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return trip.NewTrip(id, dto.Origin, dto.Destination, dto.Price)
}
