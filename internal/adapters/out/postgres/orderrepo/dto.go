// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire strings so raw reporting queries and the
// public tracking lookup stay readable without enum decoding.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber   string     `gorm:"type:varchar(32);uniqueIndex"`
	BuyerID       uuid.UUID  `gorm:"type:uuid;index"`
	FarmerID      uuid.UUID  `gorm:"type:uuid;index"`
	TransporterID *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID     *uuid.UUID `gorm:"type:uuid"`

	Items   []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`

	SubTotal       float64 `gorm:"type:decimal(12,2)"`
	TaxAmount      float64 `gorm:"type:decimal(12,2)"`
	ShippingCost   float64 `gorm:"type:decimal(12,2)"`
	DiscountAmount float64 `gorm:"type:decimal(12,2)"`
	TotalAmount    float64 `gorm:"type:decimal(12,2)"`

	Status        string `gorm:"type:varchar(16);index"`
	PaymentStatus string `gorm:"type:varchar(16)"`
	PaymentMethod string `gorm:"type:varchar(24)"`
	PaymentID     *string
	PaidAt        *time.Time

	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	TrackingNumber    *string
	TrackingURL       *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one immutable line-item snapshot of an order.
// Rows are written once at order creation and never updated.
type ItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID    uuid.UUID `gorm:"type:uuid"`
	ProductName  string
	ProductImage string
	UnitPrice    float64 `gorm:"type:decimal(12,2)"`
	Unit         string  `gorm:"type:varchar(16)"`
	Quantity     int
	QualityGrade string `gorm:"type:varchar(8)"`
	IsOrganic    bool
	HarvestDate  *time.Time
}

// TableName specifies the database table name for order item snapshots.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded shipping destination within the order table.
type AddressDTO struct {
	Street     string
	City       string
	Region     string
	PostalCode string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      aggregate.ID().Bytes(),
			ProductID:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			ProductImage: item.ProductImage(),
			UnitPrice:    item.UnitPrice().Amount(),
			Unit:         item.Unit(),
			Quantity:     item.Quantity(),
			QualityGrade: item.QualityGrade(),
			IsOrganic:    item.IsOrganic(),
			HarvestDate:  item.HarvestDate(),
		})
	}

	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		BuyerID:       aggregate.BuyerID().Bytes(),
		FarmerID:      aggregate.FarmerID().Bytes(),
		TransporterID: optionalUUIDBytes(aggregate.TransporterID()),
		VehicleID:     optionalUUIDBytes(aggregate.VehicleID()),
		Items:         items,
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			Region:     address.Region(),
			PostalCode: address.PostalCode(),
		},
		SubTotal:          aggregate.SubTotal().Amount(),
		TaxAmount:         aggregate.TaxAmount().Amount(),
		ShippingCost:      aggregate.ShippingCost().Amount(),
		DiscountAmount:    aggregate.DiscountAmount().Amount(),
		TotalAmount:       aggregate.TotalAmount().Amount(),
		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		PaymentMethod:     string(aggregate.PaymentMethod()),
		PaymentID:         aggregate.PaymentID(),
		PaidAt:            aggregate.PaidAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		TrackingNumber:    aggregate.TrackingNumber(),
		TrackingURL:       aggregate.TrackingURL(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		CancelledAt:       aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including item snapshots using RestoreOrder;
// monetary totals are recomputed from the snapshots, never trusted from the row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	transporterID, err := optionalUUIDFromBytes(dto.TransporterID)
	if err != nil {
		return nil, err
	}

	vehicleID, err := optionalUUIDFromBytes(dto.VehicleID)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Region, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	taxAmount, err := kernel.NewMoney(dto.TaxAmount)
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	discountAmount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		buyerID,
		farmerID,
		transporterID,
		vehicleID,
		items,
		address,
		order.PaymentMethod(dto.PaymentMethod),
		taxAmount,
		shippingCost,
		discountAmount,
		status,
		paymentStatus,
		dto.PaymentID,
		dto.PaidAt,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.TrackingNumber,
		dto.TrackingURL,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.CancelledAt,
	)
}

func itemsToDomain(dtos []ItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(
			id,
			productID,
			dto.ProductName,
			dto.ProductImage,
			unitPrice,
			dto.Unit,
			dto.Quantity,
			dto.QualityGrade,
			dto.IsOrganic,
			dto.HarvestDate,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func optionalUUIDBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUIDFromBytes(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
