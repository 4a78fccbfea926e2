package queries

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's detail view from the database.
// Party scoping happens in the WHERE clause: a caller who is not a party to
// the order gets the same not-found answer as for an order that does not
// exist.
type GetOrderQueryHandler struct {
	db       *gorm.DB
	progress services.DeliveryProgress
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:       db,
		progress: services.NewDeliveryProgress(),
	}
}

type orderRow struct {
	ID                uuid.UUID
	OrderNumber       string
	BuyerID           uuid.UUID
	FarmerID          uuid.UUID
	TransporterID     *uuid.UUID
	VehicleID         *uuid.UUID
	AddressStreet     string
	AddressCity       string
	AddressRegion     string
	AddressPostalCode string
	SubTotal          float64
	TaxAmount         float64
	ShippingCost      float64
	DiscountAmount    float64
	TotalAmount       float64
	Status            string
	PaymentStatus     string
	PaymentMethod     string
	PaymentID         *string
	PaidAt            *time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	TrackingNumber    *string
	TrackingURL       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CancelledAt       *time.Time
}

type itemRow struct {
	ProductID    uuid.UUID
	ProductName  string
	ProductImage string
	UnitPrice    float64
	Unit         string
	Quantity     int
	QualityGrade string
	IsOrganic    bool
	HarvestDate  *time.Time
}

// partyScope returns the SQL fragment and argument restricting order
// visibility to the caller. Admins see everything; any other non-party role
// (the gateway identity in particular) sees nothing.
func partyScope(caller kernel.UUID, actor kernel.Role) (string, []any) {
	switch actor {
	case kernel.RoleBuyer:
		return " AND buyer_id = ?", []any{caller.Bytes()}
	case kernel.RoleFarmer:
		return " AND farmer_id = ?", []any{caller.Bytes()}
	case kernel.RoleTransporter:
		return " AND transporter_id = ?", []any{caller.Bytes()}
	case kernel.RoleAdmin:
		return "", nil
	default:
		return " AND 1 = 0", nil
	}
}

// Handle executes the order detail query.
// Returns an ObjectNotFoundError when the order does not exist or the caller
// is not one of its parties.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	scope, scopeArgs := partyScope(query.Caller(), query.Actor())
	args := append([]any{query.OrderID().Bytes()}, scopeArgs...)

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT *
		FROM orders
		WHERE id = ?`+scope, args...).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var itemRows []itemRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, product_name, product_image, unit_price, unit, quantity,
			quality_grade, is_organic, harvest_date
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Scan(&itemRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return h.toResponse(row, itemRows)
}

func (h GetOrderQueryHandler) toResponse(row orderRow, itemRows []itemRow) (GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	buyerID, err := kernel.UUIDFromBytes(row.BuyerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	farmerID, err := kernel.UUIDFromBytes(row.FarmerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	transporterID, err := optionalUUID(row.TransporterID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	vehicleID, err := optionalUUID(row.VehicleID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]OrderItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		productID, idErr := kernel.UUIDFromBytes(ir.ProductID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		items = append(items, OrderItemView{
			ProductID:    productID,
			ProductName:  ir.ProductName,
			ProductImage: ir.ProductImage,
			UnitPrice:    ir.UnitPrice,
			Unit:         ir.Unit,
			Quantity:     ir.Quantity,
			QualityGrade: ir.QualityGrade,
			IsOrganic:    ir.IsOrganic,
			HarvestDate:  ir.HarvestDate,
			LineTotal:    ir.UnitPrice * float64(ir.Quantity),
		})
	}

	return GetOrderQueryResponse{
		ID:                id,
		OrderNumber:       row.OrderNumber,
		BuyerID:           buyerID,
		FarmerID:          farmerID,
		TransporterID:     transporterID,
		VehicleID:         vehicleID,
		Items:             items,
		Street:            row.AddressStreet,
		City:              row.AddressCity,
		Region:            row.AddressRegion,
		PostalCode:        row.AddressPostalCode,
		SubTotal:          row.SubTotal,
		TaxAmount:         row.TaxAmount,
		ShippingCost:      row.ShippingCost,
		DiscountAmount:    row.DiscountAmount,
		TotalAmount:       row.TotalAmount,
		Status:            row.Status,
		ProgressPercent:   h.progress.PercentageForStatus(status),
		PaymentStatus:     row.PaymentStatus,
		PaymentMethod:     row.PaymentMethod,
		PaymentID:         row.PaymentID,
		PaidAt:            row.PaidAt,
		EstimatedDelivery: row.EstimatedDelivery,
		ActualDelivery:    row.ActualDelivery,
		TrackingNumber:    row.TrackingNumber,
		TrackingURL:       row.TrackingURL,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
		CancelledAt:       row.CancelledAt,
	}, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
