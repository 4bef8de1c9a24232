package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves the staff work queue for one
// workflow status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for the work-queue view.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query, oldest orders first so the queue drains in
// arrival order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			payment_status,
			total,
			pickup_date,
			delivery_date,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
