package errs_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("deliveryJob", "order 42")

	assert.Equal(t, "deliveryJob", err.ParamName)
	assert.Equal(t, "object already exists: deliveryJob for order 42", err.Error())
	assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weightKg")

		assert.Equal(t, "weightKg", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: weightKg", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("weightKg", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weightKg (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("itemCount", 150, 0, 120)

		assert.Equal(t, "itemCount", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is itemCount, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")

		assert.Equal(t, "items", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: items", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("items", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: items (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("order", "PENDING", "READY")

	assert.Equal(t, "order", err.EntityType)
	assert.Equal(t, "PENDING", err.From)
	assert.Equal(t, "READY", err.To)
	assert.Equal(t, "invalid transition: order cannot move from PENDING to READY", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("edit", "IN_PROGRESS")

	assert.Equal(t, "invalid state: edit is not allowed in status IN_PROGRESS", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestAccessForbiddenError(t *testing.T) {
	err := errs.NewAccessForbiddenError("order 42")

	assert.Equal(t, "access forbidden: order 42", err.Error())
	assert.Equal(t, errs.ErrAccessForbidden, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("invoice", "42"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewValueIsInvalidError("weightKg"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 5, 0, 1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewInvalidTransitionError("order", "A", "B"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewInvalidStateError("edit", "READY"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewAccessForbiddenError("order 42"), errs.ErrAccessForbidden)
}
