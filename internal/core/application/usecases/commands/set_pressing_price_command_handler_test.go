package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPriceListUoW() (*MockPriceListUoW, *MockPriceListUoWFactory) {
	uow := &MockPriceListUoW{
		prices:    new(MockPriceListRepository),
		actors:    new(MockActorRepository),
		auditlogs: new(MockAuditLogRepository),
	}
	return uow, &MockPriceListUoWFactory{uow: uow}
}

func TestSetPressingPriceCommandHandler_Handle_RepricesExistingEntry(t *testing.T) {
	ctx := t.Context()
	admin := makeActor(t, actor.RoleAdmin)
	entry, err := pricing.NewCategoryPrice(kernel.NewUUID(), pricing.Shirt, kernel.NewMoneyFromInt(50))
	require.NoError(t, err)

	cmd, err := commands.NewSetPressingPriceCommand(admin.ID(), pricing.Shirt, kernel.NewMoneyFromInt(60), true)
	require.NoError(t, err)

	uow, factory := newPriceListUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	uow.prices.On("GetByCategory", ctx, pricing.Shirt).Return(entry, nil).Once()
	uow.prices.On("Update", ctx, entry).Return(nil).Once()
	uow.auditlogs.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	h := commands.NewSetPressingPriceCommandHandler(factory, testClock())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "60.00", entry.PricePerItem().String())
	assert.True(t, entry.Active())
}

func TestSetPressingPriceCommandHandler_Handle_CreatesMissingEntry(t *testing.T) {
	ctx := t.Context()
	admin := makeActor(t, actor.RoleAdmin)
	cmd, err := commands.NewSetPressingPriceCommand(admin.ID(), pricing.Coat, kernel.NewMoneyFromInt(120), true)
	require.NoError(t, err)

	uow, factory := newPriceListUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.actors.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	uow.prices.On("GetByCategory", ctx, pricing.Coat).
		Return(nil, errs.NewObjectNotFoundError("category price", pricing.Coat)).Once()
	uow.prices.On("Add", ctx, mock.AnythingOfType("*pricing.CategoryPrice")).Run(func(args mock.Arguments) {
		created := args.Get(1).(*pricing.CategoryPrice)
		assert.Equal(t, pricing.Coat, created.Category())
		assert.Equal(t, "120.00", created.PricePerItem().String())
	}).Return(nil).Once()
	uow.auditlogs.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	h := commands.NewSetPressingPriceCommandHandler(factory, testClock())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.prices.AssertExpectations(t)
}

func TestNewSetPressingPriceCommand_RejectsNegativePrice(t *testing.T) {
	_, err := commands.NewSetPressingPriceCommand(
		kernel.NewUUID(), pricing.Shirt, kernel.NewMoneyFromInt(-10), true,
	)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
