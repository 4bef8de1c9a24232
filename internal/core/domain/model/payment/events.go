package payment

import "laundry/internal/core/domain/model/kernel"

// Event names published on the payment stream.
const (
	EventCompleted = "payment.completed"
	EventFailed    = "payment.failed"
)

// CompletedEvent announces a settled payment. Consumers receive the concrete
// typed payload; no runtime type lookup is involved on either side.
type CompletedEvent struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	Amount    kernel.Money
	Method    string
	Provider  string
}

// FailedEvent announces a failed payment attempt.
type FailedEvent struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	Reason    string
}
