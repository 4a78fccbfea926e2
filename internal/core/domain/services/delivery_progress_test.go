package services_test

import (
	"testing"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryProgress_PercentageForStatus(t *testing.T) {
	progress := services.NewDeliveryProgress()

	cases := map[order.Status]int{
		order.StatusPending:    0,
		order.StatusConfirmed:  20,
		order.StatusProcessing: 40,
		order.StatusShipped:    60,
		order.StatusInTransit:  80,
		order.StatusDelivered:  100,
		order.StatusCancelled:  0,
		order.StatusRefunded:   0,
	}

	for status, want := range cases {
		assert.Equal(t, want, progress.PercentageForStatus(status), status.String())
	}

	assert.Equal(t, 0, progress.PercentageForStatus(order.StatusUnknown))
}

func TestDeliveryProgress_Percentage(t *testing.T) {
	progress := services.NewDeliveryProgress()

	event := func(t *testing.T, status order.Status, at time.Time) order.TrackingEvent {
		t.Helper()

		e, err := order.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(), status,
			"", "status changed", "", at,
		)
		require.NoError(t, err)
		return e
	}

	t.Run("should report the latest event's weight", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		history := []order.TrackingEvent{
			event(t, order.StatusPending, start),
			event(t, order.StatusConfirmed, start.Add(time.Hour)),
			event(t, order.StatusShipped, start.Add(2*time.Hour)),
		}

		assert.Equal(t, 60, progress.Percentage(history))
	})

	t.Run("should report zero for an empty history", func(t *testing.T) {
		assert.Equal(t, 0, progress.Percentage(nil))
	})

	t.Run("should drop to zero after cancellation", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		history := []order.TrackingEvent{
			event(t, order.StatusConfirmed, start),
			event(t, order.StatusCancelled, start.Add(time.Hour)),
		}

		assert.Equal(t, 0, progress.Percentage(history))
	})
}
