package orderrepo

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its item snapshots to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateConditional saves an existing order only if the stored status still
// equals observedStatus. Zero matched rows means a concurrent writer moved
// the order first; the caller receives a ConflictError and may re-read and
// retry. A vanished row also matches zero rows and is reported the same way,
// since from the caller's perspective it lost the race either way.
func (r *GormOrderRepository) UpdateConditional(
	ctx context.Context,
	aggregate *order.Order,
	observedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := observedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Items = nil

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, observedStatus.String()).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its item snapshots.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its public order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "order_number = ?", orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}
