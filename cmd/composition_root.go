package cmd

import (
	"log/slog"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"
	"laundry/internal/pkg/clock"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types; each accessor builds a fresh one over the shared factories.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.PaymentEventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root over the shared
// infrastructure handles.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.PaymentEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		clock:      clock.NewSystem(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sweepUoWFactory() commands.SweepUoWFactory {
	return FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) financeUoWFactory() commands.FinanceUoWFactory {
	return FuncFinanceUoWFactory(func() commands.FinanceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) priceListUoWFactory() commands.PriceListUoWFactory {
	return FuncPriceListUoWFactory(func() commands.PriceListUoW {
		return c.uowFactory.Create()
	})
}

// CreateServer builds the HTTP server over all use case handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerHandlers{
		CreateOrder:         commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock),
		EditOrder:           commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.clock),
		CancelOrder:         commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock),
		UpdateOrderStatus:   commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock),
		GenerateDeliveryJob: commands.NewGenerateDeliveryJobCommandHandler(c.deliveryUoWFactory(), c.clock),
		UpdateDelivery:      commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.clock),
		ReassignDelivery:    commands.NewReassignDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock),
		ConfirmCOD:          commands.NewConfirmCODPaymentCommandHandler(c.paymentUoWFactory(), c.clock),
		MarkCardPaid:        commands.NewMarkCardPaidCommandHandler(c.paymentUoWFactory(), c.publisher, c.clock, c.logger),
		MarkPaymentFailed:   commands.NewMarkPaymentFailedCommandHandler(c.paymentUoWFactory(), c.publisher, c.clock, c.logger),
		UpdatePayment:       commands.NewUpdatePaymentStatusCommandHandler(c.paymentUoWFactory(), c.clock),
		GenerateInvoice:     commands.NewGenerateInvoiceCommandHandler(c.financeUoWFactory(), c.clock),
		SetPressingPrice:    commands.NewSetPressingPriceCommandHandler(c.priceListUoWFactory(), c.clock),

		GetCustomerOrders: queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetOrdersByStatus: queries.NewGetOrdersByStatusQueryHandler(c.gormDB),
		GetDeliveries:     queries.NewGetDeliveriesForAssigneeQueryHandler(c.gormDB),
		GetFinanceStats:   queries.NewGetFinanceStatsQueryHandler(c.gormDB),
		GetPressingPrices: queries.NewGetPressingPricesQueryHandler(c.gormDB),
	})
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepHandler := commands.NewSweepLateDeliveriesCommandHandler(c.sweepUoWFactory(), c.clock)
	return jobs.NewJobManager(sweepHandler, c.logger)
}

// UnitOfWorkFactory exposes the shared factory for startup tasks such as
// seeding the price catalog.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

// Clock exposes the shared clock.
func (c *CompositionRoot) Clock() clock.Clock {
	return c.clock
}

// FuncOrderUoWFactory adapts a closure to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create implements commands.OrderUoWFactory.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncPaymentUoWFactory adapts a closure to commands.PaymentUoWFactory.
type FuncPaymentUoWFactory func() commands.PaymentUoW

// Create implements commands.PaymentUoWFactory.
func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

// FuncDeliveryUoWFactory adapts a closure to commands.DeliveryUoWFactory.
type FuncDeliveryUoWFactory func() commands.DeliveryUoW

// Create implements commands.DeliveryUoWFactory.
func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

// FuncSweepUoWFactory adapts a closure to commands.SweepUoWFactory.
type FuncSweepUoWFactory func() commands.SweepUoW

// Create implements commands.SweepUoWFactory.
func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}

// FuncFinanceUoWFactory adapts a closure to commands.FinanceUoWFactory.
type FuncFinanceUoWFactory func() commands.FinanceUoW

// Create implements commands.FinanceUoWFactory.
func (f FuncFinanceUoWFactory) Create() commands.FinanceUoW {
	return f()
}

// FuncPriceListUoWFactory adapts a closure to commands.PriceListUoWFactory.
type FuncPriceListUoWFactory func() commands.PriceListUoW

// Create implements commands.PriceListUoWFactory.
func (f FuncPriceListUoWFactory) Create() commands.PriceListUoW {
	return f()
}
