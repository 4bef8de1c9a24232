// Package invoicerepo persists invoices. The unique order_id index backs the
// one-invoice-per-order rule even under concurrent generation.
package invoicerepo

import (
	"time"

	"laundry/internal/core/domain/model/invoice"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO is the database row for an invoice.
type InvoiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	InvoiceNo string    `gorm:"type:varchar(32);uniqueIndex"`
	Amount    string    `gorm:"type:numeric(12,2)"`
	IssuedAt  time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		InvoiceNo: aggregate.InvoiceNo(),
		Amount:    aggregate.Amount().String(),
		IssuedAt:  aggregate.IssuedAt(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromString(dto.Amount)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(id, orderID, dto.InvoiceNo, amount, dto.IssuedAt, dto.CreatedAt)
}
