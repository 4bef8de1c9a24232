// Package delivery contains the delivery job aggregate: the dispatch record
// derived from a Ready order, its status, and the monotonic lateness flag.
package delivery

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob or RestoreJob constructors.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Default schedule derived from the order's pickup/delivery dates: pickup at
// 09:00, delivery at 17:00. Both are derived, never client-supplied.
const (
	DefaultPickupHour   = 9
	DefaultDeliveryHour = 17
)

// ScheduleFor derives the default pickup and delivery timestamps from an
// order's pickup and delivery dates.
func ScheduleFor(pickupDate, deliveryDate time.Time) (pickupAt, deliveryAt time.Time) {
	pickupAt = time.Date(
		pickupDate.Year(), pickupDate.Month(), pickupDate.Day(),
		DefaultPickupHour, 0, 0, 0, pickupDate.Location(),
	)
	deliveryAt = time.Date(
		deliveryDate.Year(), deliveryDate.Month(), deliveryDate.Day(),
		DefaultDeliveryHour, 0, 0, 0, deliveryDate.Location(),
	)
	return pickupAt, deliveryAt
}

// Job is the dispatch record tracking pickup and delivery of one order.
// Exactly one job exists per order.
//
// Invariant: the late flag is monotonic. It becomes true when the scheduled
// delivery time passes while the job is not terminal, and is never reset.
type Job struct {
	id         kernel.UUID
	orderID    kernel.UUID
	assigneeID *kernel.UUID
	pickupAt   time.Time
	deliveryAt time.Time
	status     Status
	late       bool

	isConstructed bool
}

// NewJob creates a Scheduled job for an order. assigneeID may be nil for an
// unassigned job.
func NewJob(
	id kernel.UUID, orderID kernel.UUID, assigneeID *kernel.UUID,
	pickupAt, deliveryAt time.Time,
) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if assigneeID != nil {
		if err := assigneeID.Validate(); err != nil {
			return nil, err
		}
	}
	if !deliveryAt.After(pickupAt) {
		return nil, errs.NewValueIsInvalidError("deliveryAt must be after pickupAt")
	}

	return &Job{
		id:            id,
		orderID:       orderID,
		assigneeID:    assigneeID,
		pickupAt:      pickupAt,
		deliveryAt:    deliveryAt,
		status:        Scheduled,
		isConstructed: true,
	}, nil
}

// RestoreJob rehydrates a job from persistence.
func RestoreJob(
	id kernel.UUID, orderID kernel.UUID, assigneeID *kernel.UUID,
	pickupAt, deliveryAt time.Time, status Status, late bool,
) (*Job, error) {
	job, err := NewJob(id, orderID, assigneeID, pickupAt, deliveryAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	job.status = status
	job.late = late
	return job, nil
}

// Validate ensures the Job instance was properly constructed.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// ID returns the job identifier.
func (j *Job) ID() kernel.UUID { return j.id }

// OrderID returns the dispatched order's identifier.
func (j *Job) OrderID() kernel.UUID { return j.orderID }

// AssigneeID returns the assigned staff member's ID, or nil if unassigned.
func (j *Job) AssigneeID() *kernel.UUID { return j.assigneeID }

// PickupAt returns the scheduled pickup timestamp.
func (j *Job) PickupAt() time.Time { return j.pickupAt }

// DeliveryAt returns the scheduled delivery timestamp, i.e. the deadline the
// late flag is judged against.
func (j *Job) DeliveryAt() time.Time { return j.deliveryAt }

// Status returns the current delivery status.
func (j *Job) Status() Status { return j.status }

// IsLate reports whether the job has overrun its deadline.
func (j *Job) IsLate() bool { return j.late }

// UpdateStatus sets the job's status. Any valid status is accepted; before
// applying, if the new status is not terminal and now is past the scheduled
// delivery time, the late flag is forced true regardless of the status set.
func (j *Job) UpdateStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !next.IsTerminal() && now.After(j.deliveryAt) {
		j.late = true
	}

	j.status = next
	return nil
}

// MarkLateIfOverdue flips the late flag when the deadline has passed while
// the job is still active. Returns true when the flag was flipped by this
// call, so the sweep can count its work. The flag is never reset.
func (j *Job) MarkLateIfOverdue(now time.Time) bool {
	if !j.status.IsActive() || j.late || !now.After(j.deliveryAt) {
		return false
	}
	j.late = true
	return true
}

// Reassign replaces the assignee.
func (j *Job) Reassign(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	j.assigneeID = &assigneeID
	return nil
}
