package order_test

import (
	"strings"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func washItem(t *testing.T, weightKg float64) order.Item {
	t.Helper()
	rate := kernel.NewMoneyFromInt(250)
	item, err := order.NewItem(
		order.ServiceWashOnly, order.UnitKg, weightKg, 0, "", rate, rate.MulFloat(weightKg),
	)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID,
		[]order.Item{washItem(t, 2)}, kernel.NewMoneyFromInt(500),
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), "", now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder_StartsPendingUnpaid(t *testing.T) {
	o := newTestOrder(t, kernel.NewUUID())

	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, payment.Pending, o.PaymentStatus())
	assert.Nil(t, o.PaidAt())
	assert.Equal(t, "500.00", o.Total().String())
}

func TestNewOrder_Validation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	items := []order.Item{washItem(t, 2)}
	total := kernel.NewMoneyFromInt(500)

	t.Run("no items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), customerID, nil, total,
			now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), "", now,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("delivery date not after pickup date", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), customerID, items, total,
			now.AddDate(0, 0, 3), now.AddDate(0, 0, 3), "", now,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty customer id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.UUID{}, items, total,
			now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), "", now,
		)
		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	o := newTestOrder(t, kernel.NewUUID())

	require.NoError(t, o.TransitionTo(order.InProgress))
	require.NoError(t, o.TransitionTo(order.Ready))
	require.NoError(t, o.TransitionTo(order.Delivered))

	err := o.TransitionTo(order.Cancelled)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, o.Status())
}

func TestOrder_CancelByCustomer(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("owner cancels pending order", func(t *testing.T) {
		o := newTestOrder(t, customerID)

		require.NoError(t, o.CancelByCustomer(customerID, "changed my mind"))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "Cancelled: changed my mind", o.Notes())
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		o := newTestOrder(t, customerID)

		err := o.CancelByCustomer(kernel.NewUUID(), "not mine")
		assert.ErrorIs(t, err, errs.ErrAccessForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("non-pending order cannot be cancelled by customer", func(t *testing.T) {
		o := newTestOrder(t, customerID)
		require.NoError(t, o.TransitionTo(order.InProgress))

		err := o.CancelByCustomer(customerID, "too late")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("overlong reason is truncated", func(t *testing.T) {
		o := newTestOrder(t, customerID)
		reason := strings.Repeat("x", 300)

		require.NoError(t, o.CancelByCustomer(customerID, reason))
		assert.Equal(t, "Cancelled: "+strings.Repeat("x", 255), o.Notes())
	})
}

func TestOrder_CancelByStaff(t *testing.T) {
	t.Run("in progress order can be cancelled", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		require.NoError(t, o.TransitionTo(order.InProgress))

		require.NoError(t, o.Cancel("machine breakdown"))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Contains(t, o.Notes(), "Cancelled: machine breakdown")
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		require.NoError(t, o.TransitionTo(order.InProgress))
		require.NoError(t, o.TransitionTo(order.Ready))
		require.NoError(t, o.TransitionTo(order.Delivered))

		assert.ErrorIs(t, o.Cancel("too late"), errs.ErrInvalidTransition)
	})
}

func TestOrder_CancelKeepsExistingNotes(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{washItem(t, 2)}, kernel.NewMoneyFromInt(500),
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), "ring the bell twice", now,
	)
	require.NoError(t, err)

	require.NoError(t, o.Cancel("duplicate order"))
	assert.Equal(t, "ring the bell twice | Cancelled: duplicate order", o.Notes())
}

func TestOrder_Edit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("pending order accepts edits", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		newItems := []order.Item{washItem(t, 4)}

		err := o.Edit(
			newItems, kernel.NewMoneyFromInt(1000),
			now.AddDate(0, 0, 2), now.AddDate(0, 0, 5), "updated",
		)
		require.NoError(t, err)
		assert.Equal(t, "1000.00", o.Total().String())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "updated", o.Notes())
	})

	t.Run("non-pending order rejects edits", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		require.NoError(t, o.TransitionTo(order.InProgress))

		err := o.Edit(
			[]order.Item{washItem(t, 4)}, kernel.NewMoneyFromInt(1000),
			now.AddDate(0, 0, 2), now.AddDate(0, 0, 5), "updated",
		)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	paidAt := now.Add(time.Hour)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{washItem(t, 2)}, kernel.NewMoneyFromInt(500),
		order.Ready, payment.Paid, payment.MethodCard, &paidAt,
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), "", now,
	)
	require.NoError(t, err)

	assert.Equal(t, order.Ready, o.Status())
	assert.Equal(t, payment.Paid, o.PaymentStatus())
	assert.Equal(t, payment.MethodCard, o.PaymentMethod())
	require.NotNil(t, o.PaidAt())
	assert.True(t, paidAt.Equal(*o.PaidAt()))
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	constructed := newTestOrder(t, kernel.NewUUID())
	assert.NoError(t, constructed.Validate())
}
