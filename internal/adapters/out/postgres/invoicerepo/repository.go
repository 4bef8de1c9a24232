package invoicerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/invoice"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add saves a new invoice. A concurrent duplicate for the same order is
// rejected by the unique index and surfaced as already-exists.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("invoice", "order "+aggregate.OrderID().String())
		}
		return err
	}
	return nil
}

// GetByOrderID retrieves the invoice issued for an order.
func (r *GormInvoiceRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", "order "+orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
