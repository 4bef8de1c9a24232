// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// audit, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends on the narrowest composition covering the repositories
// it touches; every mutating flow carries the actor and audit factories so the
// trail is written inside the same transaction.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryJobRepoFactory provides access to the delivery job repository within a transaction.
	DeliveryJobRepoFactory interface {
		DeliveryJobRepository() ports.DeliveryJobRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// PriceListRepoFactory provides access to the price list repository within a transaction.
	PriceListRepoFactory interface {
		PriceListRepository() ports.PriceListRepository
	}

	// ActorRepoFactory provides access to the actor repository within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// AuditRepoFactory provides access to the audit log repository within a transaction.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// OrderUoW manages transactions for order workflow operations. Order
	// creation and edits also read the price catalog to snapshot unit prices.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		PriceListRepoFactory
		ActorRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment settlement operations,
	// which update both the payment record and the owning order.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
		ActorRepoFactory
		AuditRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW manages transactions for delivery operations, which may
	// propagate a completed delivery back onto the order.
	DeliveryUoW interface {
		TxManager
		DeliveryJobRepoFactory
		OrderRepoFactory
		ActorRepoFactory
		AuditRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// SweepUoW manages transactions for the background lateness sweep, which
	// touches delivery jobs only and runs with no acting principal.
	SweepUoW interface {
		TxManager
		DeliveryJobRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}

	// FinanceUoW manages transactions for invoicing operations.
	FinanceUoW interface {
		TxManager
		InvoiceRepoFactory
		OrderRepoFactory
		ActorRepoFactory
		AuditRepoFactory
	}

	// FinanceUoWFactory creates new finance unit of work instances.
	FinanceUoWFactory interface {
		Create() FinanceUoW
	}

	// PriceListUoW manages transactions for price catalog administration.
	PriceListUoW interface {
		TxManager
		PriceListRepoFactory
		ActorRepoFactory
		AuditRepoFactory
	}

	// PriceListUoWFactory creates new price list unit of work instances.
	PriceListUoWFactory interface {
		Create() PriceListUoW
	}
)
