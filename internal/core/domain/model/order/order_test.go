package order_test

import (
	"strings"
	"testing"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()

	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return money
}

func mustItem(t *testing.T, name string, unitPrice float64, quantity int) order.Item {
	t.Helper()

	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(),
		name, "https://img.example/"+name+".jpg",
		mustMoney(t, unitPrice), "kg", quantity,
		"A", true, nil,
	)
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()

	address, err := order.NewAddress("12 Market Lane", "Nakuru", "Rift Valley", "20100")
	require.NoError(t, err)
	return address
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{
			mustItem(t, "tomatoes", 10.00, 2),
			mustItem(t, "spinach", 5.00, 1),
		},
		mustAddress(t),
		order.MethodCard,
		mustMoney(t, 2.50), mustMoney(t, 5.00), kernel.ZeroMoney(),
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

// advanceTo walks the order along the fulfillment chain as an admin until it
// reaches the target status.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()

	chain := []order.Status{
		order.StatusConfirmed, order.StatusProcessing, order.StatusShipped,
		order.StatusInTransit, order.StatusDelivered,
	}
	now := o.UpdatedAt()
	for _, next := range chain {
		if o.Status() == target {
			return
		}
		now = now.Add(time.Minute)
		require.NoError(t, o.ApplyStatus(next, kernel.RoleAdmin, now))
	}
	require.Equal(t, target, o.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with derived totals", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())

		// 2 x 10.00 + 1 x 5.00
		assert.InEpsilon(t, 25.00, o.SubTotal().Amount(), 1e-9)
		// 25.00 + 2.50 tax + 5.00 shipping
		assert.InEpsilon(t, 32.50, o.TotalAmount().Amount(), 1e-9)

		assert.Nil(t, o.TransporterID())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.CancelledAt())
		assert.Nil(t, o.ActualDelivery())
	})

	t.Run("should generate an order number with the marketplace prefix", func(t *testing.T) {
		o := newTestOrder(t)

		assert.True(t, strings.HasPrefix(o.OrderNumber(), "FM-"), o.OrderNumber())
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, mustAddress(t), order.MethodCard,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("should fail with unconstructed buyer ID", func(t *testing.T) {
		var invalidBuyer kernel.UUID

		_, err := order.NewOrder(
			kernel.NewUUID(), invalidBuyer, kernel.NewUUID(),
			[]order.Item{mustItem(t, "kale", 3.00, 1)},
			mustAddress(t), order.MethodCard,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
			time.Now(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "buyer")
	})

	t.Run("should fail when discount exceeds the gross amount", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "kale", 3.00, 1)},
			mustAddress(t), order.MethodCard,
			kernel.ZeroMoney(), kernel.ZeroMoney(), mustMoney(t, 50.00),
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_RecomputeTotal(t *testing.T) {
	t.Run("should be idempotent", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.TotalAmount()

		require.NoError(t, o.RecomputeTotal())
		require.NoError(t, o.RecomputeTotal())

		assert.True(t, before.IsEqual(o.TotalAmount()))
	})
}

func TestOrder_ApplyStatus(t *testing.T) {
	t.Run("should stamp cancelledAt exactly once", func(t *testing.T) {
		o := newTestOrder(t)
		cancelTime := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)

		require.NoError(t, o.ApplyStatus(order.StatusCancelled, kernel.RoleBuyer, cancelTime))

		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, cancelTime, *o.CancelledAt())
		assert.Equal(t, cancelTime, o.UpdatedAt())
	})

	t.Run("should stamp actualDelivery on delivery", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusDelivered)

		require.NotNil(t, o.ActualDelivery())
		assert.Equal(t, o.UpdatedAt(), *o.ActualDelivery())
	})

	t.Run("should not mutate the order when the transition is denied", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.ApplyStatus(order.StatusDelivered, kernel.RoleAdmin, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})

	t.Run("should reject any transition on a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusDelivered)

		err := o.ApplyStatus(order.StatusCancelled, kernel.RoleAdmin, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadyFinalized)
	})
}

func TestOrder_AssignTransporter(t *testing.T) {
	estimated := time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)

	t.Run("should assign while confirmed", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusConfirmed)

		transporterID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()
		require.NoError(t, o.AssignTransporter(transporterID, &vehicleID, estimated, time.Now()))

		require.NotNil(t, o.TransporterID())
		assert.True(t, transporterID.IsEqual(*o.TransporterID()))
		require.NotNil(t, o.VehicleID())
		assert.True(t, vehicleID.IsEqual(*o.VehicleID()))
		require.NotNil(t, o.EstimatedDelivery())
		assert.Equal(t, estimated, *o.EstimatedDelivery())
	})

	t.Run("should reject assignment while pending", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignTransporter(kernel.NewUUID(), nil, estimated, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject assignment after shipment", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusShipped)

		err := o.AssignTransporter(kernel.NewUUID(), nil, estimated, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject assignment on a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyStatus(order.StatusCancelled, kernel.RoleBuyer, time.Now()))

		err := o.AssignTransporter(kernel.NewUUID(), nil, estimated, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadyFinalized)
	})
}

func TestOrder_SetTrackingReference(t *testing.T) {
	t.Run("should record tracking reference once shipped", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusShipped)

		require.NoError(t, o.SetTrackingReference("TRK-1234", "https://carrier.example/TRK-1234", time.Now()))

		require.NotNil(t, o.TrackingNumber())
		assert.Equal(t, "TRK-1234", *o.TrackingNumber())
		require.NotNil(t, o.TrackingURL())
	})

	t.Run("should reject tracking reference before shipment", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusConfirmed)

		err := o.SetTrackingReference("TRK-1234", "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should require a tracking number", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusShipped)

		err := o.SetTrackingReference("", "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_UpdatePaymentStatus(t *testing.T) {
	paymentID := "pay_789"

	t.Run("should stamp paidAt exactly once", func(t *testing.T) {
		o := newTestOrder(t)
		first := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)

		require.NoError(t, o.UpdatePaymentStatus(order.PaymentPaid, &paymentID, first))
		require.NoError(t, o.UpdatePaymentStatus(order.PaymentPaid, &paymentID, second))

		require.NotNil(t, o.PaidAt())
		assert.Equal(t, first, *o.PaidAt())
		require.NotNil(t, o.PaymentID())
		assert.Equal(t, paymentID, *o.PaymentID())
	})

	t.Run("should reject marking a cancelled order paid", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyStatus(order.StatusCancelled, kernel.RoleBuyer, time.Now()))

		err := o.UpdatePaymentStatus(order.PaymentPaid, &paymentID, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadyFinalized)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("should allow refunding a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.UpdatePaymentStatus(order.PaymentPaid, &paymentID, time.Now()))
		require.NoError(t, o.ApplyStatus(order.StatusCancelled, kernel.RoleBuyer, time.Now()))

		require.NoError(t, o.UpdatePaymentStatus(order.PaymentRefunded, nil, time.Now()))

		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("should reject an invalid payment status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdatePaymentStatus(order.PaymentUnknown, nil, time.Now())

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a directly instantiated order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
