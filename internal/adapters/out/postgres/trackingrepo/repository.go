package trackingrepo

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
// There is no Update and no Delete; the ledger only grows.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking ledger repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Append inserts one tracking event.
func (r *GormTrackingRepository) Append(ctx context.Context, event order.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// History returns all events for an order ordered by creation time ascending.
func (r *GormTrackingRepository) History(ctx context.Context, orderID kernel.UUID) ([]order.TrackingEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}
