// Package deliveryrepo persists delivery jobs. The overdue scan the lateness
// sweep runs on is indexed by delivery_at.
package deliveryrepo

import (
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the database row for a delivery job.
type JobDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	AssigneeID *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"type:varchar(32);index"`
	PickupAt   time.Time
	DeliveryAt time.Time `gorm:"index"`
	Late       bool
}

// TableName overrides GORM's default naming to use "delivery_jobs".
func (JobDTO) TableName() string {
	return "delivery_jobs"
}

func fromDomain(aggregate *delivery.Job) JobDTO {
	var assigneeID *uuid.UUID
	if id := aggregate.AssigneeID(); id != nil {
		raw := id.Bytes()
		assigneeID = &raw
	}

	return JobDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		AssigneeID: assigneeID,
		Status:     aggregate.Status().String(),
		PickupAt:   aggregate.PickupAt(),
		DeliveryAt: aggregate.DeliveryAt(),
		Late:       aggregate.IsLate(),
	}
}

func toDomain(dto JobDTO) (*delivery.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var assigneeID *kernel.UUID
	if dto.AssigneeID != nil {
		aID, assigneeErr := kernel.UUIDFromBytes((*dto.AssigneeID)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assigneeID = &aID
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreJob(id, orderID, assigneeID, dto.PickupAt, dto.DeliveryAt, status, dto.Late)
}
