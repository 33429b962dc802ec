package http

import (
	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/model/trip"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func orderToResponse(o *order.Order) servers.Order {
	return servers.Order{
		Id:       o.ID().Bytes(),
		UserId:   o.RiderID().Bytes(),
		DriverId: driverToResponse(o.DriverID()),
		TripId:   o.TripID().Bytes(),
		Date:     openapi_types.Date{Time: o.Date()},
		Status:   servers.OrderStatus(o.Status().String()),
	}
}

func orderViewToResponse(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:       v.ID.Bytes(),
		UserId:   v.RiderID.Bytes(),
		DriverId: driverToResponse(v.DriverID),
		TripId:   v.TripID.Bytes(),
		Date:     openapi_types.Date{Time: v.Date},
		Status:   servers.OrderStatus(v.Status.String()),
	}
}

func driverToResponse(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}

func tripToResponse(t *trip.Trip) servers.Trip {
	return servers.Trip{
		Id:          t.ID().Bytes(),
		Origin:      t.Origin(),
		Destination: t.Destination(),
		Price:       t.Price(),
	}
}

func tripViewToResponse(v queries.TripView) servers.Trip {
	return servers.Trip{
		Id:          v.ID.Bytes(),
		Origin:      v.Origin,
		Destination: v.Destination,
		Price:       v.Price,
	}
}

// userToResponse never carries the password hash.
func userToResponse(u *user.User) servers.User {
	return servers.User{
		Id:     u.ID().Bytes(),
		Name:   u.Name(),
		RoleId: u.Role().Code(),
	}
}

func userViewToResponse(v queries.UserView) servers.User {
	return servers.User{
		Id:     v.ID.Bytes(),
		Name:   v.Name,
		RoleId: v.Role.Code(),
	}
}
