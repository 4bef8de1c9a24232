package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrReassignDeliveryCommandIsNotConstructed = errors.New(
	"ReassignDeliveryCommand must be created via NewReassignDeliveryCommand constructor",
)

// ReassignDeliveryCommand represents a request to hand a delivery job to a
// different member of the delivery staff.
type ReassignDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	actorID    kernel.UUID
	assigneeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignDeliveryCommand creates a command to reassign a delivery job.
func NewReassignDeliveryCommand(jobID, actorID, assigneeID kernel.UUID) (ReassignDeliveryCommand, error) {
	cmd := ReassignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActorID(actorID),
		cmd.setAssigneeID(assigneeID),
	); err != nil {
		return ReassignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReassignDeliveryCommandIsNotConstructed)
}

// JobID returns the delivery job's identifier.
func (c ReassignDeliveryCommand) JobID() kernel.UUID { return c.jobID }

// ActorID returns the acting principal's identifier.
func (c ReassignDeliveryCommand) ActorID() kernel.UUID { return c.actorID }

// AssigneeID returns the new assignee's identifier.
func (c ReassignDeliveryCommand) AssigneeID() kernel.UUID { return c.assigneeID }

func (c *ReassignDeliveryCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *ReassignDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *ReassignDeliveryCommand) setAssigneeID(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	c.assigneeID = assigneeID
	return nil
}
