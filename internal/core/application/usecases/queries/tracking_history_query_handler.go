package queries

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingHistoryQueryHandler reads the audit ledger of one order.
// The order's visibility is checked first with the same party scoping as the
// detail view; only then are the events fetched.
type TrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewTrackingHistoryQueryHandler creates a handler for ledger queries.
func NewTrackingHistoryQueryHandler(db *gorm.DB) TrackingHistoryQueryHandler {
	return TrackingHistoryQueryHandler{db: db}
}

// Handle executes the ledger query.
func (h TrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query TrackingHistoryQuery,
) (TrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackingHistoryQueryResponse{}, err
	}

	scope, scopeArgs := partyScope(query.Caller(), query.Actor())
	args := append([]any{query.OrderID().Bytes()}, scopeArgs...)

	var visible int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE id = ?`+scope, args...).Scan(&visible).Error
	if err != nil {
		return TrackingHistoryQueryResponse{}, err
	}
	if visible == 0 {
		return TrackingHistoryQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var rows []struct {
		ID          uuid.UUID
		Status      string
		Location    string
		Description string
		Notes       string
		CreatedAt   time.Time
	}
	err = h.db.WithContext(ctx).Raw(`
		SELECT id, status, location, description, notes, created_at
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY created_at ASC
	`, query.OrderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return TrackingHistoryQueryResponse{}, err
	}

	events := make([]TrackingEventView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return TrackingHistoryQueryResponse{}, idErr
		}
		events = append(events, TrackingEventView{
			ID:          id,
			Status:      row.Status,
			Location:    row.Location,
			Description: row.Description,
			Notes:       row.Notes,
			CreatedAt:   row.CreatedAt,
		})
	}

	return TrackingHistoryQueryResponse{
		OrderID: query.OrderID(),
		Events:  events,
	}, nil
}
