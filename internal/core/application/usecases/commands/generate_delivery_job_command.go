package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGenerateDeliveryJobCommandIsNotConstructed = errors.New(
	"GenerateDeliveryJobCommand must be created via NewGenerateDeliveryJobCommand constructor",
)

// GenerateDeliveryJobCommand represents a request to create the delivery job
// for a Ready order. The schedule is derived from the order's dates, never
// supplied by the caller; the assignee is optional.
type GenerateDeliveryJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	orderID    kernel.UUID
	actorID    kernel.UUID
	assigneeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateDeliveryJobCommand creates a command to dispatch an order.
// assigneeID may be nil for an unassigned job.
func NewGenerateDeliveryJobCommand(
	jobID, orderID, actorID kernel.UUID, assigneeID *kernel.UUID,
) (GenerateDeliveryJobCommand, error) {
	cmd := GenerateDeliveryJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAssigneeID(assigneeID),
	); err != nil {
		return GenerateDeliveryJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateDeliveryJobCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDeliveryJobCommandIsNotConstructed)
}

// JobID returns the identifier the new job will carry.
func (c GenerateDeliveryJobCommand) JobID() kernel.UUID { return c.jobID }

// OrderID returns the dispatched order's identifier.
func (c GenerateDeliveryJobCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c GenerateDeliveryJobCommand) ActorID() kernel.UUID { return c.actorID }

// AssigneeID returns the optional delivery staff assignment.
func (c GenerateDeliveryJobCommand) AssigneeID() *kernel.UUID { return c.assigneeID }

func (c *GenerateDeliveryJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *GenerateDeliveryJobCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *GenerateDeliveryJobCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *GenerateDeliveryJobCommand) setAssigneeID(assigneeID *kernel.UUID) error {
	if assigneeID == nil {
		return nil
	}
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	c.assigneeID = assigneeID
	return nil
}
