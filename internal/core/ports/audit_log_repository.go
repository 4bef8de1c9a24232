package ports

import (
	"context"

	"laundry/internal/core/domain/model/audit"
)

// AuditLogRepository appends entries to the audit trail. The trail is
// append-only: the core never reads it back.
type AuditLogRepository interface {
	// Add appends one audit entry.
	Add(ctx context.Context, entry *audit.Entry) error
}
