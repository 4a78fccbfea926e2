package order_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all wire representations", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":    order.StatusPending,
			"confirmed":  order.StatusConfirmed,
			"processing": order.StatusProcessing,
			"shipped":    order.StatusShipped,
			"in_transit": order.StatusInTransit,
			"delivered":  order.StatusDelivered,
			"cancelled":  order.StatusCancelled,
			"refunded":   order.StatusRefunded,
		}

		for wire, want := range cases {
			got, err := order.StatusFromString(wire)
			require.NoError(t, err, wire)
			assert.Equal(t, want, got)
			assert.Equal(t, wire, got.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := order.StatusFromString("teleported")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the unknown sentinel itself", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.True(t, order.StatusRefunded.IsTerminal())

	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusConfirmed.IsTerminal())
	assert.False(t, order.StatusProcessing.IsTerminal())
	assert.False(t, order.StatusShipped.IsTerminal())
	assert.False(t, order.StatusInTransit.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow every forward edge", func(t *testing.T) {
		forward := []struct{ from, to order.Status }{
			{order.StatusPending, order.StatusConfirmed},
			{order.StatusConfirmed, order.StatusProcessing},
			{order.StatusProcessing, order.StatusShipped},
			{order.StatusShipped, order.StatusInTransit},
			{order.StatusInTransit, order.StatusDelivered},
		}

		for _, edge := range forward {
			assert.True(t, edge.from.CanTransitionTo(edge.to),
				"%s -> %s", edge.from, edge.to)
		}
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{
			order.StatusPending, order.StatusConfirmed, order.StatusProcessing,
			order.StatusShipped, order.StatusInTransit,
		} {
			assert.True(t, from.CanTransitionTo(order.StatusCancelled), from.String())
		}
	})

	t.Run("should reject skipping a fulfillment step", func(t *testing.T) {
		assert.False(t, order.StatusPending.CanTransitionTo(order.StatusProcessing))
		assert.False(t, order.StatusConfirmed.CanTransitionTo(order.StatusDelivered))
		assert.False(t, order.StatusProcessing.CanTransitionTo(order.StatusInTransit))
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		assert.False(t, order.StatusShipped.CanTransitionTo(order.StatusProcessing))
		assert.False(t, order.StatusConfirmed.CanTransitionTo(order.StatusPending))
	})

	t.Run("should reject every edge out of terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{
			order.StatusDelivered, order.StatusCancelled, order.StatusRefunded,
		} {
			assert.Empty(t, terminal.NextStatuses(), terminal.String())
		}
	})
}
