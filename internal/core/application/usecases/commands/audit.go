package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

// resolveActor loads the acting principal inside the current transaction.
func resolveActor(ctx context.Context, uow ActorRepoFactory, actorID kernel.UUID) (*actor.Actor, error) {
	return uow.ActorRepository().Get(ctx, actorID)
}

// appendAudit writes one trail entry attributed to the resolved actor. It runs
// inside the command's transaction so the entry commits or rolls back with the
// change it describes.
func appendAudit(
	ctx context.Context, repo ports.AuditLogRepository, act *actor.Actor,
	action, entityType, entityID, before, after string, now time.Time,
) error {
	entry := audit.NewEntry(act.ID(), act.Name(), action, entityType, entityID, before, after, now)
	return repo.Add(ctx, entry)
}
