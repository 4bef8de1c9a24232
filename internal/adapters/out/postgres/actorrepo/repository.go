package actorrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ports.ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Add saves a new actor record.
func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an actor by ID.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
