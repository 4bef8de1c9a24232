// Package actorrepo persists resolved principals.
package actorrepo

import (
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO is the database row for an actor.
type ActorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:varchar(255)"`
	Role  string    `gorm:"type:varchar(32);index"`
}

// TableName overrides GORM's default naming to use "actors".
func (ActorDTO) TableName() string {
	return "actors"
}

func fromDomain(aggregate *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Role:  aggregate.Role().String(),
	}
}

func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return actor.NewActor(id, dto.Name, dto.Email, actor.Role(dto.Role))
}
