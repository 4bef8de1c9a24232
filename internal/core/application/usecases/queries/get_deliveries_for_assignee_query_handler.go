package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesForAssigneeQueryHandler retrieves one driver's delivery jobs.
type GetDeliveriesForAssigneeQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesForAssigneeQueryHandler creates a handler for the driver worklist.
func NewGetDeliveriesForAssigneeQueryHandler(db *gorm.DB) GetDeliveriesForAssigneeQueryHandler {
	return GetDeliveriesForAssigneeQueryHandler{db: db}
}

// Handle executes the query, jobs with the nearest deadlines first.
func (h GetDeliveriesForAssigneeQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesForAssigneeQuery,
) ([]DeliveryJobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			pickup_at,
			delivery_at,
			late
		FROM delivery_jobs
		WHERE assignee_id = ?
		ORDER BY delivery_at
	`, query.AssigneeID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]DeliveryJobResponse, 0)
	for rows.Next() {
		var resp DeliveryJobResponse
		var id, orderID uuid.UUID

		if err = rows.Scan(
			&id,
			&orderID,
			&resp.Status,
			&resp.PickupAt,
			&resp.DeliveryAt,
			&resp.Late,
		); err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = jobID

		jobOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = jobOrderID

		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
