package errs_test

import (
	"errors"
	"testing"

	"farmmarket/internal/pkg/errs"

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
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("discount", 150, 0, 100)

		assert.Equal(t, "discount", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is discount, min value is 0, max value is 100", err.Error())
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
		err := errs.NewValueIsRequiredError("buyerId")

		assert.Equal(t, "buyerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: buyerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("buyerId", cause)

		assert.Equal(t, "buyerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: buyerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("confirmed", "delivered")

	assert.Equal(t, "confirmed", err.From)
	assert.Equal(t, "delivered", err.To)
	assert.Equal(t, "status transition is not allowed: confirmed -> delivered", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestUnauthorizedRoleError(t *testing.T) {
	err := errs.NewUnauthorizedRoleError("buyer", "transition to shipped")

	assert.Equal(t, "buyer", err.Role)
	assert.Equal(t, "transition to shipped", err.Action)
	assert.Equal(t,
		"role is not permitted to perform this action: role is: buyer, action is: transition to shipped",
		err.Error())
	assert.Equal(t, errs.ErrUnauthorizedRole, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "123")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "123", err.ID)
	assert.Equal(t, "concurrent modification detected: param is: order, ID is: 123", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestAlreadyFinalizedError(t *testing.T) {
	err := errs.NewAlreadyFinalizedError("cancelled")

	assert.Equal(t, "cancelled", err.Status)
	assert.Equal(t, "order is already finalized: status is: cancelled", err.Error())
	assert.Equal(t, errs.ErrAlreadyFinalized, err.Unwrap())
}

func TestUpstreamUnavailableError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := errs.NewUpstreamUnavailableError("payment gateway", cause)

		assert.Equal(t, "payment gateway", err.Upstream)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"upstream service is unavailable: upstream is: payment gateway (cause: context deadline exceeded)",
			err.Error())
		assert.Equal(t, errs.ErrUpstreamUnavailable, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewUpstreamUnavailableError("catalog", nil)
		assert.Equal(t, "upstream service is unavailable: upstream is: catalog", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "status transition is not allowed", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "role is not permitted to perform this action", errs.ErrUnauthorizedRole.Error())
		assert.Equal(t, "concurrent modification detected", errs.ErrConflict.Error())
		assert.Equal(t, "order is already finalized", errs.ErrAlreadyFinalized.Error())
		assert.Equal(t, "upstream service is unavailable", errs.ErrUpstreamUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("discount", 150, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("buyerId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "delivered"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewUnauthorizedRoleError("buyer", "cancel"), errs.ErrUnauthorizedRole)
		require.ErrorIs(t, errs.NewConflictError("order", "123"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewAlreadyFinalizedError("delivered"), errs.ErrAlreadyFinalized)
		require.ErrorIs(t, errs.NewUpstreamUnavailableError("catalog", nil), errs.ErrUpstreamUnavailable)
	})
}
