// Package paymentrepo persists payment records. The unique order_id index
// backs the one-payment-per-order rule enforced by the settlement flows.
package paymentrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO is the database row for a payment record.
type PaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount      string    `gorm:"type:numeric(12,2)"`
	Method      string    `gorm:"type:varchar(16)"`
	Provider    string    `gorm:"type:varchar(16)"`
	ProviderRef string    `gorm:"type:varchar(64)"`
	Status      string    `gorm:"type:varchar(32);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Amount:      aggregate.Amount().String(),
		Method:      aggregate.Method(),
		Provider:    aggregate.Provider(),
		ProviderRef: aggregate.ProviderRef(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
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
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID, amount,
		dto.Method, dto.Provider, dto.ProviderRef, status,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
