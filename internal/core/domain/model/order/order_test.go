package order_test

import (
	"testing"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), serviceDate)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending without driver", func(t *testing.T) {
		id, rider, trip := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		o, err := order.NewOrder(id, rider, trip, serviceDate)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.IsEqual(o.ID()))
		assert.True(t, rider.IsEqual(o.RiderID()))
		assert.True(t, trip.IsEqual(o.TripID()))
		assert.Equal(t, serviceDate, o.Date())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DriverID())
	})

	t.Run("reports every missing field", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, time.Time{})

		require.Error(t, err)
		for _, field := range []string{"id", "rider_id", "trip_id", "date"} {
			assert.Contains(t, err.Error(), "value is required: "+field)
		}
	})
}

func TestOrder_ZeroValueIsInvalid(t *testing.T) {
	var o order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())

	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
}

func TestOrder_Accept(t *testing.T) {
	t.Run("pending order gets driver", func(t *testing.T) {
		o := newPendingOrder(t)
		driver := kernel.NewUUID()

		require.NoError(t, o.Accept(driver))

		assert.Equal(t, order.OnGoing, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.IsDriver(driver))
	})

	t.Run("second accept is a conflict and keeps the first driver", func(t *testing.T) {
		o := newPendingOrder(t)
		first, second := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, o.Accept(first))

		err := o.Accept(second)

		assert.Equal(t, order.ErrOrderNotAvailable, err)
		assert.True(t, o.IsDriver(first))
		assert.False(t, o.IsDriver(second))
	})

	t.Run("invalid driver id", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending to canceled", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("twice", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		assert.Equal(t, order.ErrOrderAlreadyCanceled, o.Cancel())
	})

	t.Run("on-going cannot be canceled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID()))

		assert.Equal(t, order.ErrOrderNotCancelable, o.Cancel())
		assert.Equal(t, order.OnGoing, o.Status())
	})
}

func TestOrder_Finish(t *testing.T) {
	t.Run("pending cannot be finished", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.ErrOrderNotFinishable, o.Finish())
	})

	t.Run("on-going to finished", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID()))

		require.NoError(t, o.Finish())
		assert.Equal(t, order.Finished, o.Status())
	})

	t.Run("finished is terminal", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID()))
		require.NoError(t, o.Finish())

		require.ErrorIs(t, o.Finish(), errs.ErrConflict)
		require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
		require.ErrorIs(t, o.Accept(kernel.NewUUID()), errs.ErrConflict)
	})
}

func TestOrder_DriverIDIsACopy(t *testing.T) {
	o := newPendingOrder(t)
	driver := kernel.NewUUID()
	require.NoError(t, o.Accept(driver))

	got := o.DriverID()
	*got = kernel.NewUUID()

	assert.True(t, o.IsDriver(driver))
}

func TestRestoreOrder(t *testing.T) {
	id, rider, trip := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	driver := kernel.NewUUID()

	t.Run("on-going with driver", func(t *testing.T) {
		o, err := order.RestoreOrder(id, rider, trip, &driver, serviceDate, order.OnGoing)

		require.NoError(t, err)
		assert.Equal(t, order.OnGoing, o.Status())
		assert.True(t, o.IsDriver(driver))
		assert.True(t, o.IsRider(rider))
	})

	t.Run("pending with driver is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(id, rider, trip, &driver, serviceDate, order.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("finished without driver is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(id, rider, trip, nil, serviceDate, order.Finished)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(id, rider, trip, nil, serviceDate, order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		d, err := order.ParseDate("2024-01-01")

		require.NoError(t, err)
		assert.Equal(t, serviceDate, d)
	})

	t.Run("rfc3339 is truncated to the day", func(t *testing.T) {
		d, err := order.ParseDate("2024-01-01T15:04:05+07:00")

		require.NoError(t, err)
		assert.Equal(t, serviceDate, d)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := order.ParseDate("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{"tomorrow", "2024-13-01", "01/01/2024"} {
			_, err := order.ParseDate(in)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})
}
