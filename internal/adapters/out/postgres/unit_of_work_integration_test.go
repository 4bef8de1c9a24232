package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/auditrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/paymentrepo"
	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work gives the
// settlement flows all-or-nothing semantics across repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.MigrateSchema(db))
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, payments, delivery_jobs, invoices, category_prices, actors, audit_log_entries",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testOrder := suite.createTestOrder(now)
	testPayment, err := payment.NewPayment(
		kernel.NewUUID(), testOrder.ID(), testOrder.Total(),
		payment.MethodCashOnDelivery, payment.ProviderCash, "", payment.Paid, now,
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, testPayment))
	suite.Require().NoError(uow.AuditLogRepository().Add(ctx, audit.NewEntry(
		kernel.NewUUID(), "Ops Admin", "CONFIRM_COD_PAYMENT", "ORDER",
		testOrder.ID().String(), "PENDING", "PAID", now,
	)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count(&orderrepo.OrderDTO{}))
	suite.Equal(int64(1), suite.count(&paymentrepo.PaymentDTO{}))
	suite.Equal(int64(1), suite.count(&auditrepo.EntryDTO{}))

	retrieved, err := suite.factory.Create().PaymentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Paid, retrieved.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testOrder := suite.createTestOrder(now)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.AuditLogRepository().Add(ctx, audit.NewEntry(
		kernel.NewUUID(), "Ops Admin", "CREATE_ORDER", "ORDER",
		testOrder.ID().String(), "", testOrder.Total().String(), now,
	)))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.count(&orderrepo.OrderDTO{}))
	suite.Equal(int64(0), suite.count(&orderrepo.ItemDTO{}))
	suite.Equal(int64(0), suite.count(&auditrepo.EntryDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(now time.Time) *order.Order {
	unitPrice, err := kernel.NewMoneyFromString("250.00")
	suite.Require().NoError(err)
	lineTotal, err := kernel.NewMoneyFromString("500.00")
	suite.Require().NoError(err)

	item, err := order.NewItem(order.ServiceWashOnly, order.UnitKg, 2.0, 0, "", unitPrice, lineTotal)
	suite.Require().NoError(err)

	pickup := now.AddDate(0, 0, 1)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, lineTotal,
		pickup, pickup.AddDate(0, 0, 2), "", now,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) count(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
