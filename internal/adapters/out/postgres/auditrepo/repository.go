package auditrepo

import (
	"context"

	"laundry/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements ports.AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Add appends one audit entry.
func (r *GormAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
