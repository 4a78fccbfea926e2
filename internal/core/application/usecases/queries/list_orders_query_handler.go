package queries

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads a page of the caller's orders.
// The COUNT and the page SELECT run inside one transaction so the reported
// total always matches the snapshot the page was cut from.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for paginated order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type listRow struct {
	ID            uuid.UUID
	OrderNumber   string
	Status        string
	PaymentStatus string
	TotalAmount   float64
	ItemCount     int
	CreatedAt     time.Time
}

// Handle executes the listing query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 4)

	scope, scopeArgs := partyScope(query.Caller(), query.Actor())
	where += scope
	args = append(args, scopeArgs...)

	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, status.String())
	}
	if paymentStatus := query.PaymentStatus(); paymentStatus != nil {
		where += " AND payment_status = ?"
		args = append(args, paymentStatus.String())
	}
	if from := query.CreatedFrom(); from != nil {
		where += " AND created_at >= ?"
		args = append(args, *from)
	}
	if to := query.CreatedTo(); to != nil {
		where += " AND created_at <= ?"
		args = append(args, *to)
	}

	var totalCount int64
	var rows []listRow

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`SELECT COUNT(*) FROM orders WHERE `+where, args...).Scan(&totalCount).Error; err != nil {
			return err
		}

		offset := (query.Page() - 1) * query.PageSize()
		pageArgs := append(append([]any{}, args...), query.PageSize(), offset)

		return tx.Raw(`
			SELECT o.id, o.order_number, o.status, o.payment_status, o.total_amount,
				o.created_at,
				(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
			FROM orders o
			WHERE `+where+`
			ORDER BY o.created_at DESC, o.id
			LIMIT ? OFFSET ?
		`, pageArgs...).Scan(&rows).Error
	})
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderSummaryView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		orders = append(orders, OrderSummaryView{
			ID:            id,
			OrderNumber:   row.OrderNumber,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			TotalAmount:   row.TotalAmount,
			ItemCount:     row.ItemCount,
			CreatedAt:     row.CreatedAt,
		})
	}

	return ListOrdersQueryResponse{
		Orders:     orders,
		TotalCount: totalCount,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
	}, nil
}
