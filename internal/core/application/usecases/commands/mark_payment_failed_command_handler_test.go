package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPaymentFailedCommandHandler_Handle_FirstAttemptFails(t *testing.T) {
	ctx := t.Context()
	customer := makeActor(t, actor.RoleCustomer)
	ord := makeOrder(t, customer.ID())
	cmd, err := commands.NewMarkPaymentFailedCommand(ord.ID(), customer.ID(), "insufficient funds")
	require.NoError(t, err)

	uow, factory := newPaymentUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.orders.On("Update", ctx, ord).Return(nil).Once()
	uow.payments.On("GetByOrderID", ctx, ord.ID()).
		Return(nil, errs.NewObjectNotFoundError("payment", ord.ID())).Once()
	uow.payments.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Run(func(args mock.Arguments) {
		pay := args.Get(1).(*payment.Payment)
		assert.Equal(t, payment.Failed, pay.Status())
		assert.Equal(t, payment.MethodCard, pay.Method())
	}).Return(nil).Once()
	uow.auditlogs.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	publisher := new(MockPaymentEventPublisher)
	publisher.On("PublishFailed", ctx, mock.AnythingOfType("payment.FailedEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(payment.FailedEvent)
			assert.Equal(t, ord.ID(), event.OrderID)
			assert.Equal(t, "insufficient funds", event.Reason)
		}).Return(nil).Once()

	h := commands.NewMarkPaymentFailedCommandHandler(factory, publisher, testClock(), testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	// the order mirrors the failed attempt; Failed is not terminal
	assert.Equal(t, payment.Failed, ord.PaymentStatus())
	assert.Nil(t, ord.PaidAt())
	publisher.AssertExpectations(t)
}

func TestMarkPaymentFailedCommandHandler_Handle_RetriedAttemptFailsAgain(t *testing.T) {
	ctx := t.Context()
	customer := makeActor(t, actor.RoleCustomer)
	ord := makeOrder(t, customer.ID())

	ord.SetPaymentStatus(payment.Failed)

	existing, err := payment.NewPayment(
		kernel.NewUUID(), ord.ID(), ord.Total(),
		payment.MethodCard, payment.ProviderDemo, "",
		payment.Failed, testNow.AddDate(0, 0, -1),
	)
	require.NoError(t, err)

	cmd, err := commands.NewMarkPaymentFailedCommand(ord.ID(), customer.ID(), "card expired")
	require.NoError(t, err)

	uow, factory := newPaymentUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.orders.On("Update", ctx, ord).Return(nil).Once()
	uow.payments.On("GetByOrderID", ctx, ord.ID()).Return(existing, nil).Once()
	uow.payments.On("Update", ctx, existing).Return(nil).Once()
	uow.auditlogs.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	publisher := new(MockPaymentEventPublisher)
	publisher.On("PublishFailed", ctx, mock.AnythingOfType("payment.FailedEvent")).Return(nil).Once()

	h := commands.NewMarkPaymentFailedCommandHandler(factory, publisher, testClock(), testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, payment.Failed, existing.Status())
	assert.True(t, existing.UpdatedAt().Equal(testNow))
	publisher.AssertExpectations(t)
}

func TestMarkPaymentFailedCommandHandler_Handle_PaidPaymentRefusesFailure(t *testing.T) {
	ctx := t.Context()
	customer := makeActor(t, actor.RoleCustomer)
	ord := makeOrder(t, customer.ID())
	ord.SetPaymentStatus(payment.Paid)
	ord.SetPaidAt(testNow.AddDate(0, 0, -1))

	cmd, err := commands.NewMarkPaymentFailedCommand(ord.ID(), customer.ID(), "late callback")
	require.NoError(t, err)

	uow, factory := newPaymentUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	publisher := new(MockPaymentEventPublisher)

	h := commands.NewMarkPaymentFailedCommandHandler(factory, publisher, testClock(), testLogger())
	assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)

	assert.Equal(t, payment.Paid, ord.PaymentStatus())
	uow.payments.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishFailed", mock.Anything, mock.Anything)
}
