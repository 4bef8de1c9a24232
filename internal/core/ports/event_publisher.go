package ports

import (
	"context"

	"laundry/internal/core/domain/model/payment"
)

// PaymentEventPublisher announces payment outcomes on the message stream.
// Publishing happens after the owning transaction commits; a publish failure
// is logged, never rolled back into the settlement.
type PaymentEventPublisher interface {
	// PublishCompleted announces a settled payment.
	PublishCompleted(ctx context.Context, event payment.CompletedEvent) error

	// PublishFailed announces a failed payment attempt.
	PublishFailed(ctx context.Context, event payment.FailedEvent) error
}
