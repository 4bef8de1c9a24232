package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetFinanceStatsQueryHandler aggregates revenue and order counts for the
// finance dashboard. One round trip per aggregate source.
type GetFinanceStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetFinanceStatsQueryHandler creates a handler for finance aggregates.
func NewGetFinanceStatsQueryHandler(db *gorm.DB) GetFinanceStatsQueryHandler {
	return GetFinanceStatsQueryHandler{db: db}
}

// Handle executes the aggregation over payments, orders and invoices created
// in the period.
func (h GetFinanceStatsQueryHandler) Handle(
	ctx context.Context,
	query GetFinanceStatsQuery,
) (FinanceStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return FinanceStatsResponse{}, err
	}

	var resp FinanceStatsResponse
	var revenue, pending string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0),
			COUNT(*) FILTER (WHERE status = 'PAID'),
			COUNT(*) FILTER (WHERE status = 'PENDING')
		FROM payments
		WHERE created_at >= ? AND created_at < ?
	`, query.From(), query.To()).Row()
	if err := row.Scan(&revenue, &pending, &resp.PaidPayments, &resp.PendingPayments); err != nil {
		return FinanceStatsResponse{}, err
	}

	total, err := kernel.NewMoneyFromString(revenue)
	if err != nil {
		return FinanceStatsResponse{}, err
	}
	resp.TotalRevenue = total

	outstanding, err := kernel.NewMoneyFromString(pending)
	if err != nil {
		return FinanceStatsResponse{}, err
	}
	resp.PendingAmount = outstanding

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'CANCELLED')
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, query.From(), query.To()).Row()
	if err := row.Scan(&resp.TotalOrders, &resp.CancelledOrders); err != nil {
		return FinanceStatsResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM invoices
		WHERE issued_at >= ? AND issued_at < ?
	`, query.From(), query.To()).Row()
	if err := row.Scan(&resp.InvoicesIssued); err != nil {
		return FinanceStatsResponse{}, err
	}

	return resp, nil
}
