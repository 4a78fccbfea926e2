package services

import (
	"farmmarket/internal/core/domain/model/order"
)

// DeliveryProgress maps an order's tracking history to a display progress
// percentage. The value is derived on read from a fixed weight table and is
// never persisted.
//
// Cancelled and refunded orders report 0%: the percentage approximates
// distance to delivery, and a cancelled order is no longer moving toward it.
// The ledger keeps the pre-cancellation history for anyone who needs it.
type DeliveryProgress struct{}

// NewDeliveryProgress creates a delivery progress calculator.
func NewDeliveryProgress() DeliveryProgress {
	return DeliveryProgress{}
}

func progressWeights() map[order.Status]int {
	return map[order.Status]int{
		order.StatusPending:    0,
		order.StatusConfirmed:  20,
		order.StatusProcessing: 40,
		order.StatusShipped:    60,
		order.StatusInTransit:  80,
		order.StatusDelivered:  100,
		order.StatusCancelled:  0,
		order.StatusRefunded:   0,
	}
}

// Percentage returns the progress of the latest event in the history.
// An empty history reports 0.
func (p DeliveryProgress) Percentage(history []order.TrackingEvent) int {
	if len(history) == 0 {
		return 0
	}
	return p.PercentageForStatus(history[len(history)-1].Status())
}

// PercentageForStatus returns the fixed weight for a single status.
// Unknown statuses report 0.
func (DeliveryProgress) PercentageForStatus(status order.Status) int {
	return progressWeights()[status]
}
