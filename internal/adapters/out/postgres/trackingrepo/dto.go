// Package trackingrepo persists the append-only order tracking ledger.
// Events are inserted once and never updated or deleted; the sequence of
// rows for an order is the audit trail of its lifecycle.
package trackingrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TrackingEventDTO represents one ledger row.
type TrackingEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:varchar(16)"`
	Location    string
	Description string
	Notes       string
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event order.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		ID:          event.ID().Bytes(),
		OrderID:     event.OrderID().Bytes(),
		Status:      event.Status().String(),
		Location:    event.Location(),
		Description: event.Description(),
		Notes:       event.Notes(),
		CreatedAt:   event.CreatedAt(),
	}
}

func toDomain(dto TrackingEventDTO) (order.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.TrackingEvent{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.TrackingEvent{}, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.TrackingEvent{}, err
	}

	return order.NewTrackingEvent(
		id,
		orderID,
		status,
		dto.Location,
		dto.Description,
		dto.Notes,
		dto.CreatedAt,
	)
}
