package http

import (
	"time"

	"farmmarket/internal/core/application/usecases/queries"
)

// Request bodies.

type itemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
}

type createOrderRequest struct {
	Items          []itemRequest  `json:"items"`
	Address        addressRequest `json:"address"`
	PaymentMethod  string         `json:"paymentMethod"`
	TaxAmount      float64        `json:"taxAmount"`
	ShippingCost   float64        `json:"shippingCost"`
	DiscountAmount float64        `json:"discountAmount"`
}

type updateStatusRequest struct {
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	Location       string `json:"location"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl"`
}

type cancelOrderRequest struct {
	Notes string `json:"notes"`
}

type assignTransporterRequest struct {
	TransporterID     string    `json:"transporterId"`
	VehicleID         string    `json:"vehicleId"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

type processPaymentRequest struct {
	Details map[string]string `json:"details"`
}

type paymentWebhookRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// Response bodies.

type orderItemBody struct {
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	ProductImage string     `json:"productImage,omitempty"`
	UnitPrice    float64    `json:"unitPrice"`
	Unit         string     `json:"unit"`
	Quantity     int        `json:"quantity"`
	QualityGrade string     `json:"qualityGrade,omitempty"`
	IsOrganic    bool       `json:"isOrganic"`
	HarvestDate  *time.Time `json:"harvestDate,omitempty"`
	LineTotal    float64    `json:"lineTotal"`
}

type orderDetailBody struct {
	ID            string  `json:"id"`
	OrderNumber   string  `json:"orderNumber"`
	BuyerID       string  `json:"buyerId"`
	FarmerID      string  `json:"farmerId"`
	TransporterID *string `json:"transporterId,omitempty"`
	VehicleID     *string `json:"vehicleId,omitempty"`

	Items []orderItemBody `json:"items"`

	Address addressRequest `json:"address"`

	SubTotal       float64 `json:"subTotal"`
	TaxAmount      float64 `json:"taxAmount"`
	ShippingCost   float64 `json:"shippingCost"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	Status          string `json:"status"`
	ProgressPercent int    `json:"progressPercent"`

	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentID     *string    `json:"paymentId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`

	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`
	TrackingNumber    *string    `json:"trackingNumber,omitempty"`
	TrackingURL       *string    `json:"trackingUrl,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type orderSummaryBody struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   float64   `json:"totalAmount"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type orderListBody struct {
	Orders     []orderSummaryBody `json:"orders"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

type trackingBody struct {
	OrderNumber       string     `json:"orderNumber"`
	Status            string     `json:"status"`
	ProgressPercent   int        `json:"progressPercent"`
	LastLocation      string     `json:"lastLocation,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`
	TrackingNumber    *string    `json:"trackingNumber,omitempty"`
	TrackingURL       *string    `json:"trackingUrl,omitempty"`
}

type trackingEventBody struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type trackingHistoryBody struct {
	OrderID string              `json:"orderId"`
	Events  []trackingEventBody `json:"events"`
}

type summaryStatsBody struct {
	TotalOrders       int64            `json:"totalOrders"`
	CountByStatus     map[string]int64 `json:"countByStatus"`
	TotalRevenue      float64          `json:"totalRevenue"`
	AverageOrderValue float64          `json:"averageOrderValue"`
}

func toOrderDetailBody(view queries.GetOrderQueryResponse) orderDetailBody {
	items := make([]orderItemBody, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, orderItemBody{
			ProductID:    item.ProductID.String(),
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice,
			Unit:         item.Unit,
			Quantity:     item.Quantity,
			QualityGrade: item.QualityGrade,
			IsOrganic:    item.IsOrganic,
			HarvestDate:  item.HarvestDate,
			LineTotal:    item.LineTotal,
		})
	}

	var transporterID, vehicleID *string
	if view.TransporterID != nil {
		s := view.TransporterID.String()
		transporterID = &s
	}
	if view.VehicleID != nil {
		s := view.VehicleID.String()
		vehicleID = &s
	}

	return orderDetailBody{
		ID:            view.ID.String(),
		OrderNumber:   view.OrderNumber,
		BuyerID:       view.BuyerID.String(),
		FarmerID:      view.FarmerID.String(),
		TransporterID: transporterID,
		VehicleID:     vehicleID,
		Items:         items,
		Address: addressRequest{
			Street:     view.Street,
			City:       view.City,
			Region:     view.Region,
			PostalCode: view.PostalCode,
		},
		SubTotal:          view.SubTotal,
		TaxAmount:         view.TaxAmount,
		ShippingCost:      view.ShippingCost,
		DiscountAmount:    view.DiscountAmount,
		TotalAmount:       view.TotalAmount,
		Status:            view.Status,
		ProgressPercent:   view.ProgressPercent,
		PaymentStatus:     view.PaymentStatus,
		PaymentMethod:     view.PaymentMethod,
		PaymentID:         view.PaymentID,
		PaidAt:            view.PaidAt,
		EstimatedDelivery: view.EstimatedDelivery,
		ActualDelivery:    view.ActualDelivery,
		TrackingNumber:    view.TrackingNumber,
		TrackingURL:       view.TrackingURL,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
		CancelledAt:       view.CancelledAt,
	}
}

func toOrderListBody(view queries.ListOrdersQueryResponse) orderListBody {
	orders := make([]orderSummaryBody, 0, len(view.Orders))
	for _, row := range view.Orders {
		orders = append(orders, orderSummaryBody{
			ID:            row.ID.String(),
			OrderNumber:   row.OrderNumber,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			TotalAmount:   row.TotalAmount,
			ItemCount:     row.ItemCount,
			CreatedAt:     row.CreatedAt,
		})
	}

	return orderListBody{
		Orders:     orders,
		TotalCount: view.TotalCount,
		Page:       view.Page,
		PageSize:   view.PageSize,
	}
}

func toTrackingBody(view queries.TrackOrderQueryResponse) trackingBody {
	return trackingBody{
		OrderNumber:       view.OrderNumber,
		Status:            view.Status,
		ProgressPercent:   view.ProgressPercent,
		LastLocation:      view.LastLocation,
		EstimatedDelivery: view.EstimatedDelivery,
		ActualDelivery:    view.ActualDelivery,
		TrackingNumber:    view.TrackingNumber,
		TrackingURL:       view.TrackingURL,
	}
}

func toTrackingHistoryBody(view queries.TrackingHistoryQueryResponse) trackingHistoryBody {
	events := make([]trackingEventBody, 0, len(view.Events))
	for _, event := range view.Events {
		events = append(events, trackingEventBody{
			ID:          event.ID.String(),
			Status:      event.Status,
			Location:    event.Location,
			Description: event.Description,
			Notes:       event.Notes,
			CreatedAt:   event.CreatedAt,
		})
	}

	return trackingHistoryBody{
		OrderID: view.OrderID.String(),
		Events:  events,
	}
}

func toSummaryStatsBody(view queries.OrderSummaryQueryResponse) summaryStatsBody {
	return summaryStatsBody{
		TotalOrders:       view.TotalOrders,
		CountByStatus:     view.CountByStatus,
		TotalRevenue:      view.TotalRevenue,
		AverageOrderValue: view.AverageOrderValue,
	}
}
