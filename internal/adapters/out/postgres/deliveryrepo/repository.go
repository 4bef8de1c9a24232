package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// activeStatuses are the statuses the overdue scan considers. Must stay in
// sync with delivery.Status.IsActive.
func activeStatuses() []string {
	return []string{
		delivery.Scheduled.String(),
		delivery.PickedUp.String(),
		delivery.InTransit.String(),
	}
}

// GormDeliveryJobRepository implements ports.DeliveryJobRepository using GORM.
type GormDeliveryJobRepository struct {
	db *gorm.DB
}

// NewGormDeliveryJobRepository creates a new GORM delivery job repository.
func NewGormDeliveryJobRepository(db *gorm.DB) *GormDeliveryJobRepository {
	return &GormDeliveryJobRepository{db: db}
}

// Add saves a new delivery job.
func (r *GormDeliveryJobRepository) Add(ctx context.Context, aggregate *delivery.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing delivery job. All columns are written so clearing
// the late flag or assignee would round-trip, even though the domain never
// clears the flag.
func (r *GormDeliveryJobRepository) Update(ctx context.Context, aggregate *delivery.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery job", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a delivery job by ID.
func (r *GormDeliveryJobRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the delivery job for an order.
func (r *GormDeliveryJobRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Job, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery job", "order "+orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves active jobs past their delivery deadline that are
// not yet flagged late.
func (r *GormDeliveryJobRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*delivery.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ? AND late = ? AND delivery_at < ?", activeStatuses(), false, now).
		Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*delivery.Job, 0, len(dtos))
	for _, dto := range dtos {
		job, jobErr := toDomain(dto)
		if jobErr != nil {
			return nil, jobErr
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
