package ports

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
)

// ActorRepository resolves acting principals for authorization and audit
// attribution.
type ActorRepository interface {
	// Add persists a new actor record.
	Add(ctx context.Context, aggregate *actor.Actor) error

	// Get retrieves an actor by its unique identifier.
	// Returns an object-not-found error for unknown actors.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
}
