package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetFinanceStatsQueryIsNotConstructed = errors.New(
	"GetFinanceStatsQuery must be created via NewGetFinanceStatsQuery constructor",
)

// GetFinanceStatsQuery aggregates revenue and order counts over a period.
type GetFinanceStatsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetFinanceStatsQuery creates a query over the half-open period [from, to).
func NewGetFinanceStatsQuery(from, to time.Time) (GetFinanceStatsQuery, error) {
	if from.IsZero() {
		return GetFinanceStatsQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetFinanceStatsQuery{}, errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return GetFinanceStatsQuery{}, errs.NewValueIsInvalidError("to must be after from")
	}

	return GetFinanceStatsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFinanceStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetFinanceStatsQueryIsNotConstructed)
}

// From returns the period start, inclusive.
func (q GetFinanceStatsQuery) From() time.Time { return q.from }

// To returns the period end, exclusive.
func (q GetFinanceStatsQuery) To() time.Time { return q.to }

// FinanceStatsResponse is the aggregated finance read model. Revenue and the
// outstanding amount are summed over the payment ledger; only Paid attempts
// count toward revenue.
type FinanceStatsResponse struct {
	TotalRevenue    kernel.Money
	PendingAmount   kernel.Money
	PaidPayments    int
	PendingPayments int
	TotalOrders     int
	CancelledOrders int
	InvoicesIssued  int
}
