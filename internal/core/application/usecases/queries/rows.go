package queries

import (
	"database/sql"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanOrderRows converts order listing rows into read models. The listing
// queries share one projection so they share one scanner.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, customerID uuid.UUID
		var total string

		if err := rows.Scan(
			&id,
			&customerID,
			&resp.Status,
			&resp.PaymentStatus,
			&total,
			&resp.PickupDate,
			&resp.DeliveryDate,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = orderID

		ownerID, err := kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		resp.CustomerID = ownerID

		amount, err := kernel.NewMoneyFromString(total)
		if err != nil {
			return nil, err
		}
		resp.Total = amount

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
