package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditOrderCommandHandler_Handle_RepricesAndReplacesItems(t *testing.T) {
	ctx := t.Context()
	customer := makeActor(t, actor.RoleCustomer)
	ord := makeOrder(t, customer.ID())

	cmd, err := commands.NewEditOrderCommand(
		ord.ID(), customer.ID(),
		[]order.Selection{order.WashOnlySelection{WeightKg: 4}}, false, false,
		testNow.AddDate(0, 0, 2), testNow.AddDate(0, 0, 4), "leave at reception",
	)
	require.NoError(t, err)

	uow, factory := newOrderUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.prices.On("GetAll", ctx).Return(testPriceEntries(t), nil).Once()
	uow.orders.On("Update", ctx, ord).Return(nil).Once()
	uow.auditlogs.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	h := commands.NewEditOrderCommandHandler(factory, testClock())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "1000.00", ord.Total().String())
	assert.Equal(t, "leave at reception", ord.Notes())
	require.Len(t, ord.Items(), 1)
	assert.InDelta(t, 4.0, ord.Items()[0].WeightKg(), 0.0001)
	assert.True(t, ord.PickupDate().Equal(testNow.AddDate(0, 0, 2)))
	uow.orders.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_CustomerCannotEditOthersOrder(t *testing.T) {
	ctx := t.Context()
	customer := makeActor(t, actor.RoleCustomer)
	ord := makeOrder(t, kernel.NewUUID())

	cmd, err := commands.NewEditOrderCommand(
		ord.ID(), customer.ID(),
		[]order.Selection{order.WashOnlySelection{WeightKg: 1}}, false, false,
		testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 3), "",
	)
	require.NoError(t, err)

	uow, factory := newOrderUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	h := commands.NewEditOrderCommandHandler(factory, testClock())
	assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAccessForbidden)
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditOrderCommandHandler_Handle_NonPendingOrderRejected(t *testing.T) {
	ctx := t.Context()
	staff := makeActor(t, actor.RoleLaundryStaff)
	ord := makeOrder(t, kernel.NewUUID())
	require.NoError(t, ord.TransitionTo(order.InProgress))

	cmd, err := commands.NewEditOrderCommand(
		ord.ID(), staff.ID(),
		[]order.Selection{order.WashOnlySelection{WeightKg: 1}}, false, false,
		testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 3), "",
	)
	require.NoError(t, err)

	uow, factory := newOrderUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, staff.ID()).Return(staff, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.prices.On("GetAll", ctx).Return(testPriceEntries(t), nil).Once()

	h := commands.NewEditOrderCommandHandler(factory, testClock())
	assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
