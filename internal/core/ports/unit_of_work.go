package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// DeliveryJobRepository returns a DeliveryJobRepository bound to the current transaction.
	DeliveryJobRepository() DeliveryJobRepository

	// InvoiceRepository returns an InvoiceRepository bound to the current transaction.
	InvoiceRepository() InvoiceRepository

	// PriceListRepository returns a PriceListRepository bound to the current transaction.
	PriceListRepository() PriceListRepository

	// ActorRepository returns an ActorRepository bound to the current transaction.
	ActorRepository() ActorRepository

	// AuditLogRepository returns an AuditLogRepository bound to the current transaction.
	AuditLogRepository() AuditLogRepository
}
