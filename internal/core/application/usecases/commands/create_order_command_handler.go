package commands

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement. Prices the requested
// services against the current catalog snapshot and persists the order in
// Pending status with payment Pending.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the order placement command. Customers may only place
// orders for themselves; staff roles may place orders on a customer's behalf.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	act, err := resolveActor(ctx, uow, cmd.ActorID())
	if err != nil {
		return err
	}
	if act.Role() == actor.RoleCustomer && !act.ID().IsEqual(cmd.CustomerID()) {
		return errs.NewAccessForbiddenError("order for customer " + cmd.CustomerID().String())
	}

	priced, err := priceSelections(ctx, uow, cmd.Selections(), cmd.Express(), cmd.Premium())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), priced.Items, priced.Total,
		cmd.PickupDate(), cmd.DeliveryDate(), cmd.Notes(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"CREATE_ORDER", "ORDER", newOrder.ID().String(),
		"", newOrder.Total().String(), now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// priceSelections snapshots the catalog inside the current transaction and
// prices the selections against it.
func priceSelections(
	ctx context.Context, uow PriceListRepoFactory,
	selections []order.Selection, express, premium bool,
) (services.PricedOrder, error) {
	entries, err := uow.PriceListRepository().GetAll(ctx)
	if err != nil {
		return services.PricedOrder{}, err
	}

	engine := services.NewPricingEngine(pricing.NewPriceTable(entries, pricing.DefaultPressingPrice))
	return engine.Price(selections, express, premium)
}
