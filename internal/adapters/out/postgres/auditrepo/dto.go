// Package auditrepo appends audit entries. Write-only from the core's point
// of view.
package auditrepo

import (
	"time"

	"laundry/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO is the database row for one audit entry.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID     uuid.UUID `gorm:"type:uuid;index"`
	ActorName   string    `gorm:"type:varchar(255)"`
	Action      string    `gorm:"type:varchar(64);index"`
	EntityType  string    `gorm:"type:varchar(32)"`
	EntityID    string    `gorm:"type:varchar(64);index"`
	BeforeValue string    `gorm:"type:text"`
	AfterValue  string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_log_entries".
func (EntryDTO) TableName() string {
	return "audit_log_entries"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:          entry.ID().Bytes(),
		ActorID:     entry.ActorID().Bytes(),
		ActorName:   entry.ActorName(),
		Action:      entry.Action(),
		EntityType:  entry.EntityType(),
		EntityID:    entry.EntityID(),
		BeforeValue: entry.Before(),
		AfterValue:  entry.After(),
		CreatedAt:   entry.CreatedAt(),
	}
}
