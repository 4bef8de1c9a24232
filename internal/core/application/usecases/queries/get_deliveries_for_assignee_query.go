package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetDeliveriesForAssigneeQueryIsNotConstructed = errors.New(
	"GetDeliveriesForAssigneeQuery must be created via NewGetDeliveriesForAssigneeQuery constructor",
)

// GetDeliveriesForAssigneeQuery retrieves the delivery jobs assigned to one
// member of the delivery staff, the driver's worklist view.
type GetDeliveriesForAssigneeQuery struct {
	assigneeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesForAssigneeQuery creates a query for one assignee's jobs.
func NewGetDeliveriesForAssigneeQuery(assigneeID kernel.UUID) (GetDeliveriesForAssigneeQuery, error) {
	if err := assigneeID.Validate(); err != nil {
		return GetDeliveriesForAssigneeQuery{}, err
	}
	return GetDeliveriesForAssigneeQuery{
		assigneeID: assigneeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesForAssigneeQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesForAssigneeQueryIsNotConstructed)
}

// AssigneeID returns the queried assignee's identifier.
func (q GetDeliveriesForAssigneeQuery) AssigneeID() kernel.UUID { return q.assigneeID }

// DeliveryJobResponse is the delivery job read model.
type DeliveryJobResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Status     string
	PickupAt   time.Time
	DeliveryAt time.Time
	Late       bool
}
