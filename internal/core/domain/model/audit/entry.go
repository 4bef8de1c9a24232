// Package audit defines the append-only trail written by every mutating
// operation. Entries are fire-and-record: the core writes them and never
// reads them back.
package audit

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// Entry is one immutable audit record: who did what to which entity, with
// before/after values.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	actorName  string
	action     string
	entityType string
	entityID   string
	before     string
	after      string
	createdAt  time.Time
}

// NewEntry creates an audit record. before and after may be empty when the
// action has no meaningful prior or resulting value.
func NewEntry(
	actorID kernel.UUID, actorName, action, entityType, entityID, before, after string,
	now time.Time,
) *Entry {
	return &Entry{
		id:         kernel.NewUUID(),
		actorID:    actorID,
		actorName:  actorName,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		before:     before,
		after:      after,
		createdAt:  now,
	}
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// ActorID returns who performed the action.
func (e *Entry) ActorID() kernel.UUID { return e.actorID }

// ActorName returns the actor's display name at the time of the action.
func (e *Entry) ActorName() string { return e.actorName }

// Action returns the action code, e.g. UPDATE_STATUS.
func (e *Entry) Action() string { return e.action }

// EntityType returns the kind of entity acted upon.
func (e *Entry) EntityType() string { return e.entityType }

// EntityID returns the acted-upon entity's identifier.
func (e *Entry) EntityID() string { return e.entityID }

// Before returns the prior value, if any.
func (e *Entry) Before() string { return e.before }

// After returns the resulting value, if any.
func (e *Entry) After() string { return e.after }

// CreatedAt returns when the action happened.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
