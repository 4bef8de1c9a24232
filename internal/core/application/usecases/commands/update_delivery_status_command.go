package commands

import (
	"errors"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a delivery staff request to update
// the status of a delivery job.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	actorID kernel.UUID
	next    delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to move a job to next.
func NewUpdateDeliveryStatusCommand(
	jobID, actorID kernel.UUID, next delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActorID(actorID),
		cmd.setNext(next),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// JobID returns the delivery job's identifier.
func (c UpdateDeliveryStatusCommand) JobID() kernel.UUID { return c.jobID }

// ActorID returns the acting principal's identifier.
func (c UpdateDeliveryStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Next returns the requested status.
func (c UpdateDeliveryStatusCommand) Next() delivery.Status { return c.next }

func (c *UpdateDeliveryStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNext(next delivery.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
