package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeOverdueJob(t *testing.T, deliveryAt time.Time) *delivery.Job {
	t.Helper()
	job, err := delivery.NewJob(
		kernel.NewUUID(), kernel.NewUUID(), nil, deliveryAt.Add(-48*time.Hour), deliveryAt,
	)
	require.NoError(t, err)
	return job
}

func TestSweepLateDeliveriesCommandHandler_Handle_FlagsOverdueJobs(t *testing.T) {
	ctx := t.Context()
	overdueOne := makeOverdueJob(t, testNow.Add(-time.Hour))
	overdueTwo := makeOverdueJob(t, testNow.Add(-2*time.Hour))

	jobs := new(MockDeliveryJobRepository)
	uow := &MockSweepUoW{jobs: jobs}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	jobs.On("GetAllOverdue", ctx, testNow).
		Return([]*delivery.Job{overdueOne, overdueTwo}, nil).Once()
	jobs.On("Update", ctx, overdueOne).Return(nil).Once()
	jobs.On("Update", ctx, overdueTwo).Return(nil).Once()

	h := commands.NewSweepLateDeliveriesCommandHandler(&MockSweepUoWFactory{uow: uow}, testClock())
	flagged, err := h.Handle(ctx, commands.NewSweepLateDeliveriesCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, flagged)
	assert.True(t, overdueOne.IsLate())
	assert.True(t, overdueTwo.IsLate())
}

func TestSweepLateDeliveriesCommandHandler_Handle_SecondPassFindsNothing(t *testing.T) {
	ctx := t.Context()
	job := makeOverdueJob(t, testNow.Add(-time.Hour))
	require.True(t, job.MarkLateIfOverdue(testNow))

	jobs := new(MockDeliveryJobRepository)
	uow := &MockSweepUoW{jobs: jobs}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	jobs.On("GetAllOverdue", ctx, testNow).Return([]*delivery.Job{job}, nil).Once()

	h := commands.NewSweepLateDeliveriesCommandHandler(&MockSweepUoWFactory{uow: uow}, testClock())
	flagged, err := h.Handle(ctx, commands.NewSweepLateDeliveriesCommand())

	require.NoError(t, err)
	assert.Equal(t, 0, flagged)
	jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSweepLateDeliveriesCommandHandler_Handle_EmptySet(t *testing.T) {
	ctx := t.Context()

	jobs := new(MockDeliveryJobRepository)
	uow := &MockSweepUoW{jobs: jobs}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	jobs.On("GetAllOverdue", ctx, testNow).Return([]*delivery.Job{}, nil).Once()

	h := commands.NewSweepLateDeliveriesCommandHandler(&MockSweepUoWFactory{uow: uow}, clock.NewFixed(testNow))
	flagged, err := h.Handle(ctx, commands.NewSweepLateDeliveriesCommand())

	require.NoError(t, err)
	assert.Equal(t, 0, flagged)
}
