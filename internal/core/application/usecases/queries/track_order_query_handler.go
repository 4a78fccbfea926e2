package queries

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves the public tracking page.
// The last known location comes from the most recent ledger event that
// carries one; the progress percentage is derived from the current status.
type TrackOrderQueryHandler struct {
	db       *gorm.DB
	progress services.DeliveryProgress
}

// NewTrackOrderQueryHandler creates a handler for public tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{
		db:       db,
		progress: services.NewDeliveryProgress(),
	}
}

// Handle executes the tracking lookup.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var row struct {
		ID                uuid.UUID
		OrderNumber       string
		Status            string
		EstimatedDelivery *time.Time
		ActualDelivery    *time.Time
		TrackingNumber    *string
		TrackingURL       *string
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, status, estimated_delivery, actual_delivery,
			tracking_number, tracking_url
		FROM orders
		WHERE order_number = ?
	`, query.OrderNumber()).Scan(&row)
	if result.Error != nil {
		return TrackOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var lastLocation string
	err = h.db.WithContext(ctx).Raw(`
		SELECT location
		FROM tracking_events
		WHERE order_id = ? AND location <> ''
		ORDER BY created_at DESC
		LIMIT 1
	`, row.ID).Scan(&lastLocation).Error
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		OrderNumber:       row.OrderNumber,
		Status:            row.Status,
		ProgressPercent:   h.progress.PercentageForStatus(status),
		LastLocation:      lastLocation,
		EstimatedDelivery: row.EstimatedDelivery,
		ActualDelivery:    row.ActualDelivery,
		TrackingNumber:    row.TrackingNumber,
		TrackingURL:       row.TrackingURL,
	}, nil
}
