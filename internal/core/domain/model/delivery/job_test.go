package delivery_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) *delivery.Job {
	t.Helper()
	pickupAt := time.Date(2026, 3, 11, delivery.DefaultPickupHour, 0, 0, 0, time.UTC)
	deliveryAt := time.Date(2026, 3, 13, delivery.DefaultDeliveryHour, 0, 0, 0, time.UTC)

	job, err := delivery.NewJob(kernel.NewUUID(), kernel.NewUUID(), nil, pickupAt, deliveryAt)
	require.NoError(t, err)
	return job
}

func TestScheduleFor(t *testing.T) {
	pickupDate := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	deliveryDate := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	pickupAt, deliveryAt := delivery.ScheduleFor(pickupDate, deliveryDate)

	assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), pickupAt)
	assert.Equal(t, time.Date(2026, 3, 13, 17, 0, 0, 0, time.UTC), deliveryAt)
}

func TestNewJob(t *testing.T) {
	t.Run("starts scheduled and on time", func(t *testing.T) {
		job := newTestJob(t)
		assert.Equal(t, delivery.Scheduled, job.Status())
		assert.False(t, job.IsLate())
		assert.Nil(t, job.AssigneeID())
	})

	t.Run("delivery must follow pickup", func(t *testing.T) {
		at := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
		_, err := delivery.NewJob(kernel.NewUUID(), kernel.NewUUID(), nil, at, at)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("optional assignee is validated when present", func(t *testing.T) {
		pickupAt := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
		deliveryAt := pickupAt.AddDate(0, 0, 2)

		var empty kernel.UUID
		_, err := delivery.NewJob(kernel.NewUUID(), kernel.NewUUID(), &empty, pickupAt, deliveryAt)
		require.Error(t, err)

		assignee := kernel.NewUUID()
		job, err := delivery.NewJob(kernel.NewUUID(), kernel.NewUUID(), &assignee, pickupAt, deliveryAt)
		require.NoError(t, err)
		require.NotNil(t, job.AssigneeID())
		assert.True(t, assignee.IsEqual(*job.AssigneeID()))
	})
}

func TestJob_UpdateStatus(t *testing.T) {
	t.Run("on-time update does not flag lateness", func(t *testing.T) {
		job := newTestJob(t)
		beforeDeadline := job.DeliveryAt().Add(-time.Hour)

		require.NoError(t, job.UpdateStatus(delivery.PickedUp, beforeDeadline))
		assert.Equal(t, delivery.PickedUp, job.Status())
		assert.False(t, job.IsLate())
	})

	t.Run("overdue non-terminal update forces the late flag", func(t *testing.T) {
		job := newTestJob(t)
		afterDeadline := job.DeliveryAt().Add(time.Hour)

		require.NoError(t, job.UpdateStatus(delivery.InTransit, afterDeadline))
		assert.True(t, job.IsLate())
	})

	t.Run("terminal update past the deadline stays on time", func(t *testing.T) {
		job := newTestJob(t)
		afterDeadline := job.DeliveryAt().Add(time.Hour)

		require.NoError(t, job.UpdateStatus(delivery.Delivered, afterDeadline))
		assert.Equal(t, delivery.Delivered, job.Status())
		assert.False(t, job.IsLate())
	})

	t.Run("late flag survives later updates", func(t *testing.T) {
		job := newTestJob(t)
		afterDeadline := job.DeliveryAt().Add(time.Hour)

		require.NoError(t, job.UpdateStatus(delivery.InTransit, afterDeadline))
		require.True(t, job.IsLate())

		require.NoError(t, job.UpdateStatus(delivery.Delivered, afterDeadline.Add(time.Hour)))
		assert.Equal(t, delivery.Delivered, job.Status())
		assert.True(t, job.IsLate())
	})
}

func TestJob_MarkLateIfOverdue(t *testing.T) {
	t.Run("flags an active overdue job once", func(t *testing.T) {
		job := newTestJob(t)
		afterDeadline := job.DeliveryAt().Add(time.Minute)

		assert.True(t, job.MarkLateIfOverdue(afterDeadline))
		assert.True(t, job.IsLate())

		// second sweep pass finds nothing to do
		assert.False(t, job.MarkLateIfOverdue(afterDeadline.Add(time.Minute)))
		assert.True(t, job.IsLate())
	})

	t.Run("ignores jobs within their deadline", func(t *testing.T) {
		job := newTestJob(t)
		assert.False(t, job.MarkLateIfOverdue(job.DeliveryAt().Add(-time.Minute)))
		assert.False(t, job.IsLate())
	})

	t.Run("ignores terminal jobs", func(t *testing.T) {
		job := newTestJob(t)
		afterDeadline := job.DeliveryAt().Add(time.Hour)
		require.NoError(t, job.UpdateStatus(delivery.Delivered, afterDeadline))

		assert.False(t, job.MarkLateIfOverdue(afterDeadline))
		assert.False(t, job.IsLate())
	})
}

func TestJob_Reassign(t *testing.T) {
	job := newTestJob(t)
	assignee := kernel.NewUUID()

	require.NoError(t, job.Reassign(assignee))
	require.NotNil(t, job.AssigneeID())
	assert.True(t, assignee.IsEqual(*job.AssigneeID()))

	var empty kernel.UUID
	require.Error(t, job.Reassign(empty))
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Cancelled.IsTerminal())
	assert.False(t, delivery.Late.IsTerminal())

	assert.True(t, delivery.Scheduled.IsActive())
	assert.True(t, delivery.PickedUp.IsActive())
	assert.True(t, delivery.InTransit.IsActive())
	assert.False(t, delivery.Delivered.IsActive())
	assert.False(t, delivery.Late.IsActive())
}
