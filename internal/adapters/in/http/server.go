// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries, and domain errors into status codes. No
// business rules live here.
package http

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateStatusHandler      commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	assignTransporterHandler commands.AssignTransporterCommandHandler
	processPaymentHandler    commands.ProcessPaymentCommandHandler
	reconcilePaymentHandler  commands.ReconcilePaymentCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	trackingHistoryHandler queries.TrackingHistoryQueryHandler
	orderSummaryHandler    queries.OrderSummaryQueryHandler

	jwtSecret     []byte
	webhookSecret string
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignTransporterHandler commands.AssignTransporterCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	reconcilePaymentHandler commands.ReconcilePaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	trackingHistoryHandler queries.TrackingHistoryQueryHandler,
	orderSummaryHandler queries.OrderSummaryQueryHandler,
	jwtSecret []byte,
	webhookSecret string,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		assignTransporterHandler: assignTransporterHandler,
		processPaymentHandler:    processPaymentHandler,
		reconcilePaymentHandler:  reconcilePaymentHandler,
		getOrderHandler:          getOrderHandler,
		trackOrderHandler:        trackOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		trackingHistoryHandler:   trackingHistoryHandler,
		orderSummaryHandler:      orderSummaryHandler,
		jwtSecret:                jwtSecret,
		webhookSecret:            webhookSecret,
	}
}

// RegisterRoutes wires every route onto the echo instance. Routes under the
// authenticated group require a valid bearer token; the tracking page, the
// payment webhook, and the health check stay public.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/orders/number/:number", s.TrackOrderByNumber)
	e.POST("/api/v1/payments/webhook", s.PaymentWebhook)

	authed := e.Group("/api/v1", AuthMiddleware(s.jwtSecret))
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/summary", s.OrderSummary)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	authed.POST("/orders/:id/transporter", s.AssignTransporter)
	authed.POST("/orders/:id/payment", s.ProcessPayment)
	authed.POST("/orders/:id/cancel", s.CancelOrder)
	authed.GET("/orders/:id/tracking", s.TrackingHistory)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// authenticated buyer.
func (s *Server) CreateOrder(c echo.Context) error {
	caller, _ := callerIdentity(c)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	items := make([]commands.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody{
				Code: http.StatusBadRequest, Message: "invalid product id: " + item.ProductID})
		}
		items = append(items, commands.ItemRequest{ProductID: productID, Quantity: item.Quantity})
	}

	address, err := order.NewAddress(req.Address.Street, req.Address.City, req.Address.Region, req.Address.PostalCode)
	if err != nil {
		return writeError(c, err)
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, caller, items, address, method,
		req.TaxAmount, req.ShippingCost, req.DiscountAmount,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - full detail view for a party
// of the order.
func (s *Server) GetOrder(c echo.Context) error {
	caller, role := callerIdentity(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	query, err := queries.NewGetOrderQuery(orderID, caller, role)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailBody(view))
}

// TrackOrderByNumber handles GET /api/v1/orders/number/:number - the public
// tracking page view, reduced to non-PII fields.
func (s *Server) TrackOrderByNumber(c echo.Context) error {
	query, err := queries.NewTrackOrderQuery(c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.trackOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTrackingBody(view))
}

// ListOrders handles GET /api/v1/orders - the caller's orders, newest first,
// with optional status filters and pagination.
func (s *Server) ListOrders(c echo.Context) error {
	caller, role := callerIdentity(c)

	page, err := intQueryParam(c, "page", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid page"})
	}
	pageSize, err := intQueryParam(c, "pageSize", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid pageSize"})
	}

	query, err := queries.NewListOrdersQuery(
		caller, role,
		c.QueryParam("status"), c.QueryParam("paymentStatus"),
		page, pageSize,
	)
	if err != nil {
		return writeError(c, err)
	}

	from, err := timeQueryParam(c, "from")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid from timestamp"})
	}
	to, err := timeQueryParam(c, "to")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid to timestamp"})
	}
	if query, err = query.WithCreatedBetween(from, to); err != nil {
		return writeError(c, err)
	}

	view, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderListBody(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves the
// order along the fulfillment graph and appends a ledger event.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	_, role := callerIdentity(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, role, req.Notes, req.Location)
	if err != nil {
		return writeError(c, err)
	}
	if req.TrackingNumber != "" {
		cmd = cmd.WithTrackingReference(req.TrackingNumber, req.TrackingURL)
	}

	if err := s.updateStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	_, role := callerIdentity(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req cancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, role, req.Notes)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignTransporter handles POST /api/v1/orders/:id/transporter.
func (s *Server) AssignTransporter(c echo.Context) error {
	_, role := callerIdentity(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req assignTransporterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	transporterID, err := kernel.UUIDFromString(req.TransporterID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid transporter id"})
	}

	var vehicleID *kernel.UUID
	if req.VehicleID != "" {
		parsed, err := kernel.UUIDFromString(req.VehicleID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody{
				Code: http.StatusBadRequest, Message: "invalid vehicle id"})
		}
		vehicleID = &parsed
	}

	cmd, err := commands.NewAssignTransporterCommand(orderID, transporterID, vehicleID, req.EstimatedDelivery, role)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.assignTransporterHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ProcessPayment handles POST /api/v1/orders/:id/payment - charges the
// order through the payment gateway on the buyer's behalf.
func (s *Server) ProcessPayment(c echo.Context) error {
	caller, role := callerIdentity(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req processPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, caller, role, req.Details)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.processPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PaymentWebhook handles POST /api/v1/payments/webhook - gateway callbacks
// reporting the final state of a charge. Authenticated with the shared
// webhook secret, not a user token; the command runs with the gateway role.
func (s *Server) PaymentWebhook(c echo.Context) error {
	provided := c.Request().Header.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(s.webhookSecret)) != 1 {
		return c.JSON(http.StatusUnauthorized, errorBody{
			Code: http.StatusUnauthorized, Message: "invalid webhook secret"})
	}

	var req paymentWebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	paymentStatus, err := order.PaymentStatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	var paymentID *string
	if req.PaymentID != "" {
		paymentID = &req.PaymentID
	}

	cmd, err := commands.NewReconcilePaymentCommand(orderID, paymentStatus, paymentID, kernel.RoleGateway)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.reconcilePaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TrackingHistory handles GET /api/v1/orders/:id/tracking - the order's
// append-only event ledger, oldest first.
func (s *Server) TrackingHistory(c echo.Context) error {
	caller, role := callerIdentity(c)

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	query, err := queries.NewTrackingHistoryQuery(orderID, caller, role)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.trackingHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTrackingHistoryBody(view))
}

// OrderSummary handles GET /api/v1/orders/summary - aggregate counts and
// revenue over the caller's visible orders.
func (s *Server) OrderSummary(c echo.Context) error {
	caller, role := callerIdentity(c)

	query, err := queries.NewOrderSummaryQuery(caller, role)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.orderSummaryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toSummaryStatsBody(view))
}

func timeQueryParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
