package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testClock() clock.Clock { return clock.NewFixed(testNow) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeActor(t *testing.T, role actor.Role) *actor.Actor {
	t.Helper()
	act, err := actor.NewActor(kernel.NewUUID(), "Test Actor", "actor@example.com", role)
	require.NoError(t, err)
	return act
}

func makeOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	rate := kernel.NewMoneyFromInt(250)
	item, err := order.NewItem(order.ServiceWashOnly, order.UnitKg, 2, 0, "", rate, rate.MulInt(2))
	require.NoError(t, err)

	ord, err := order.NewOrder(
		kernel.NewUUID(), customerID, []order.Item{item}, kernel.NewMoneyFromInt(500),
		testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 3), "", testNow,
	)
	require.NoError(t, err)
	return ord
}

func testPriceEntries(t *testing.T) []*pricing.CategoryPrice {
	t.Helper()
	shirt, err := pricing.NewCategoryPrice(kernel.NewUUID(), pricing.Shirt, kernel.NewMoneyFromInt(50))
	require.NoError(t, err)
	return []*pricing.CategoryPrice{shirt}
}
