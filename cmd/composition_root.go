package cmd

import (
	"time"

	httpin "farmmarket/internal/adapters/in/http"
	"farmmarket/internal/adapters/out/paymentgw"
	"farmmarket/internal/adapters/out/postgres"
	"farmmarket/internal/adapters/out/postgres/productrepo"
	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	timeout, err := time.ParseDuration(configs.PaymentGatewayTimeout)
	if err != nil {
		timeout = 0 // client falls back to its default
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    paymentgw.NewClient(configs.PaymentGatewayURL, configs.PaymentGatewayAPIKey, timeout),
	}
}

func (c *CompositionRoot) GormDB() *gorm.DB {
	return c.gormDB
}

func (c *CompositionRoot) PaymentGateway() ports.PaymentGateway {
	return c.gateway
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, productrepo.NewGormCatalogReader(c.gormDB))
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTransporterCommandHandler() commands.AssignTransporterCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTransporterCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateReconcilePaymentCommandHandler() commands.ReconcilePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackingHistoryQueryHandler() queries.TrackingHistoryQueryHandler {
	return queries.NewTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderSummaryQueryHandler() queries.OrderSummaryQueryHandler {
	return queries.NewOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAssignTransporterCommandHandler(),
		c.CreateProcessPaymentCommandHandler(),
		c.CreateReconcilePaymentCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateTrackingHistoryQueryHandler(),
		c.CreateOrderSummaryQueryHandler(),
		[]byte(c.configs.JWTSecret),
		c.configs.WebhookSecret,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
