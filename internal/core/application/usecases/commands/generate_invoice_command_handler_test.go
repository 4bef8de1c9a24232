package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/invoice"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFinanceUoW() (*MockFinanceUoW, *MockFinanceUoWFactory) {
	uow := &MockFinanceUoW{
		invoices:  new(MockInvoiceRepository),
		orders:    new(MockOrderRepository),
		actors:    new(MockActorRepository),
		auditlogs: new(MockAuditLogRepository),
	}
	return uow, &MockFinanceUoWFactory{uow: uow}
}

func TestGenerateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	finance := makeActor(t, actor.RoleFinanceStaff)
	ord := makeOrder(t, kernel.NewUUID())
	cmd, err := commands.NewGenerateInvoiceCommand(kernel.NewUUID(), ord.ID(), finance.ID())
	require.NoError(t, err)

	uow, factory := newFinanceUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, finance.ID()).Return(finance, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.invoices.On("GetByOrderID", ctx, ord.ID()).
		Return(nil, errs.NewObjectNotFoundError("invoice", ord.ID())).Once()
	uow.invoices.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).Run(func(args mock.Arguments) {
		inv := args.Get(1).(*invoice.Invoice)
		assert.True(t, inv.Amount().Equals(ord.Total()))
		assert.Regexp(t, `^INV-\d+$`, inv.InvoiceNo())
	}).Return(nil).Once()
	uow.auditlogs.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	h := commands.NewGenerateInvoiceCommandHandler(factory, testClock())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.invoices.AssertExpectations(t)
}

func TestGenerateInvoiceCommandHandler_Handle_DuplicateIsConflict(t *testing.T) {
	ctx := t.Context()
	finance := makeActor(t, actor.RoleFinanceStaff)
	ord := makeOrder(t, kernel.NewUUID())
	existing, err := invoice.NewInvoice(kernel.NewUUID(), ord.ID(), ord.Total(), testNow)
	require.NoError(t, err)

	cmd, err := commands.NewGenerateInvoiceCommand(kernel.NewUUID(), ord.ID(), finance.ID())
	require.NoError(t, err)

	uow, factory := newFinanceUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, finance.ID()).Return(finance, nil).Once()
	uow.orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.invoices.On("GetByOrderID", ctx, ord.ID()).Return(existing, nil).Once()

	h := commands.NewGenerateInvoiceCommandHandler(factory, testClock())
	assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
	uow.invoices.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
