// Package postgres provides the GORM-based Unit of Work and the repository
// implementations behind the ports layer. Each business operation gets a
// fresh unit of work; repositories obtained from it run inside the current
// transaction, so a rolled-back command leaves no partial writes, audit
// entries included.
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/actorrepo"
	"laundry/internal/adapters/out/postgres/auditrepo"
	"laundry/internal/adapters/out/postgres/deliveryrepo"
	"laundry/internal/adapters/out/postgres/invoicerepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/paymentrepo"
	"laundry/internal/adapters/out/postgres/pricelistrepo"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each Create call returns an isolated instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given database handle.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork on top of a GORM transaction.
// Repositories requested before Begin run against the bare connection;
// after Begin they are bound to the open transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin again on an instance with an
// open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the open transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// PaymentRepository returns a payment repository bound to the current transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

// DeliveryJobRepository returns a delivery job repository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryJobRepository() ports.DeliveryJobRepository {
	return deliveryrepo.NewGormDeliveryJobRepository(uow.conn())
}

// InvoiceRepository returns an invoice repository bound to the current transaction.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn())
}

// PriceListRepository returns a price list repository bound to the current transaction.
func (uow *GormUnitOfWork) PriceListRepository() ports.PriceListRepository {
	return pricelistrepo.NewGormPriceListRepository(uow.conn())
}

// ActorRepository returns an actor repository bound to the current transaction.
func (uow *GormUnitOfWork) ActorRepository() ports.ActorRepository {
	return actorrepo.NewGormActorRepository(uow.conn())
}

// AuditLogRepository returns an audit log repository bound to the current transaction.
func (uow *GormUnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return auditrepo.NewGormAuditLogRepository(uow.conn())
}
