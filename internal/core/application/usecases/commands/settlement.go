package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

// upsertPayment records one settlement attempt against the order's payment
// record, creating it on first contact. The Paid-terminal rule is enforced by
// the aggregate on both paths.
func upsertPayment(
	ctx context.Context, uow PaymentRepoFactory, orderID kernel.UUID,
	amount kernel.Money, method, provider, providerRef string,
	status payment.Status, now time.Time,
) (*payment.Payment, error) {
	repo := uow.PaymentRepository()

	existing, err := repo.GetByOrderID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}

		created, newErr := payment.NewPayment(
			kernel.NewUUID(), orderID, amount, method, provider, providerRef, status, now,
		)
		if newErr != nil {
			return nil, newErr
		}
		if addErr := repo.Add(ctx, created); addErr != nil {
			return nil, addErr
		}
		return created, nil
	}

	if err = existing.RecordAttempt(amount, method, provider, providerRef, status, now); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// applyPaymentToOrder mirrors a settlement outcome onto the order's payment
// fields through its PayableOrder surface. paidAt is stamped exactly once,
// when the order first reaches Paid.
func applyPaymentToOrder(ord payment.PayableOrder, status payment.Status, method string, now time.Time) error {
	next, err := ord.PaymentStatus().TransitionTo(status)
	if err != nil {
		return err
	}

	ord.SetPaymentStatus(next)
	if method != "" {
		ord.SetPaymentMethod(method)
	}
	if next == payment.Paid && ord.PaidAt() == nil {
		ord.SetPaidAt(now)
	}
	return nil
}
