package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/invoice"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockDeliveryJobRepository struct{ mock.Mock }

func (m *MockDeliveryJobRepository) Add(ctx context.Context, j *delivery.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockDeliveryJobRepository) Update(ctx context.Context, j *delivery.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockDeliveryJobRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Job), args.Error(1)
}

func (m *MockDeliveryJobRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Job, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Job), args.Error(1)
}

func (m *MockDeliveryJobRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*delivery.Job, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Job), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

type MockPriceListRepository struct{ mock.Mock }

func (m *MockPriceListRepository) Add(ctx context.Context, entry *pricing.CategoryPrice) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPriceListRepository) Update(ctx context.Context, entry *pricing.CategoryPrice) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPriceListRepository) GetByCategory(
	ctx context.Context, category pricing.PressingCategory,
) (*pricing.CategoryPrice, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.CategoryPrice), args.Error(1)
}

func (m *MockPriceListRepository) GetAll(ctx context.Context) ([]*pricing.CategoryPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.CategoryPrice), args.Error(1)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Add(ctx context.Context, a *actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockPaymentEventPublisher struct{ mock.Mock }

func (m *MockPaymentEventPublisher) PublishCompleted(ctx context.Context, event payment.CompletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPaymentEventPublisher) PublishFailed(ctx context.Context, event payment.FailedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// txMock covers the shared transaction lifecycle of every mock unit of work.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct {
	txMock
	orders    *MockOrderRepository
	prices    *MockPriceListRepository
	actors    *MockActorRepository
	auditlogs *MockAuditLogRepository
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository         { return m.orders }
func (m *MockOrderUoW) PriceListRepository() ports.PriceListRepository { return m.prices }
func (m *MockOrderUoW) ActorRepository() ports.ActorRepository         { return m.actors }
func (m *MockOrderUoW) AuditLogRepository() ports.AuditLogRepository   { return m.auditlogs }

type MockOrderUoWFactory struct{ uow *MockOrderUoW }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW { return m.uow }

type MockPaymentUoW struct {
	txMock
	payments  *MockPaymentRepository
	orders    *MockOrderRepository
	actors    *MockActorRepository
	auditlogs *MockAuditLogRepository
}

func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository { return m.payments }
func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository     { return m.orders }
func (m *MockPaymentUoW) ActorRepository() ports.ActorRepository     { return m.actors }
func (m *MockPaymentUoW) AuditLogRepository() ports.AuditLogRepository {
	return m.auditlogs
}

type MockPaymentUoWFactory struct{ uow *MockPaymentUoW }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW { return m.uow }

type MockDeliveryUoW struct {
	txMock
	jobs      *MockDeliveryJobRepository
	orders    *MockOrderRepository
	actors    *MockActorRepository
	auditlogs *MockAuditLogRepository
}

func (m *MockDeliveryUoW) DeliveryJobRepository() ports.DeliveryJobRepository { return m.jobs }
func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository             { return m.orders }
func (m *MockDeliveryUoW) ActorRepository() ports.ActorRepository             { return m.actors }
func (m *MockDeliveryUoW) AuditLogRepository() ports.AuditLogRepository {
	return m.auditlogs
}

type MockDeliveryUoWFactory struct{ uow *MockDeliveryUoW }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW { return m.uow }

type MockSweepUoW struct {
	txMock
	jobs *MockDeliveryJobRepository
}

func (m *MockSweepUoW) DeliveryJobRepository() ports.DeliveryJobRepository { return m.jobs }

type MockSweepUoWFactory struct{ uow *MockSweepUoW }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW { return m.uow }

type MockFinanceUoW struct {
	txMock
	invoices  *MockInvoiceRepository
	orders    *MockOrderRepository
	actors    *MockActorRepository
	auditlogs *MockAuditLogRepository
}

func (m *MockFinanceUoW) InvoiceRepository() ports.InvoiceRepository { return m.invoices }
func (m *MockFinanceUoW) OrderRepository() ports.OrderRepository     { return m.orders }
func (m *MockFinanceUoW) ActorRepository() ports.ActorRepository     { return m.actors }
func (m *MockFinanceUoW) AuditLogRepository() ports.AuditLogRepository {
	return m.auditlogs
}

type MockFinanceUoWFactory struct{ uow *MockFinanceUoW }

func (m *MockFinanceUoWFactory) Create() commands.FinanceUoW { return m.uow }

type MockPriceListUoW struct {
	txMock
	prices    *MockPriceListRepository
	actors    *MockActorRepository
	auditlogs *MockAuditLogRepository
}

func (m *MockPriceListUoW) PriceListRepository() ports.PriceListRepository { return m.prices }
func (m *MockPriceListUoW) ActorRepository() ports.ActorRepository         { return m.actors }
func (m *MockPriceListUoW) AuditLogRepository() ports.AuditLogRepository {
	return m.auditlogs
}

type MockPriceListUoWFactory struct{ uow *MockPriceListUoW }

func (m *MockPriceListUoWFactory) Create() commands.PriceListUoW { return m.uow }
