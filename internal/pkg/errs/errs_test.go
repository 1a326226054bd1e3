package errs_test

import (
	"errors"
	"testing"

	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestOperationForbiddenError(t *testing.T) {
	t.Run("NewOperationForbiddenError", func(t *testing.T) {
		err := errs.NewOperationForbiddenError("cancel", "caller is not the sender")

		assert.Equal(t, "cancel", err.Operation)
		assert.Equal(t, "caller is not the sender", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation forbidden: cancel: caller is not the sender", err.Error())
		assert.Equal(t, errs.ErrOperationForbidden, err.Unwrap())
	})

	t.Run("NewOperationForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("parcel is blocked")
		err := errs.NewOperationForbiddenErrorWithCause("return", "parcel is blocked", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation forbidden: return: parcel is blocked (cause: parcel is blocked)",
			err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("cancel", "in transit")

		assert.Equal(t, "cancel", err.Operation)
		assert.Equal(t, "in transit", err.CurrentStatus)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: cancel is not allowed while parcel is in transit", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("message names the current status", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("confirm delivery", "approved")
		assert.Contains(t, err.Error(), "approved")
	})
}

func TestUniquenessViolationError(t *testing.T) {
	t.Run("NewUniquenessViolationError", func(t *testing.T) {
		err := errs.NewUniquenessViolationError("trackingId", "TRK-20260829-1A2B3C")

		assert.Equal(t, "trackingId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"uniqueness violation: trackingId TRK-20260829-1A2B3C already exists",
			err.Error())
		assert.Equal(t, errs.ErrUniquenessViolation, err.Unwrap())
	})

	t.Run("NewUniquenessViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewUniquenessViolationErrorWithCause("trackingId", "TRK-20260829-1A2B3C", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "cause: duplicated key not allowed")
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("phone")

		assert.Equal(t, "phone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: phone", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phone", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phone (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", -1.5, 0.1, 1000)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, -1.5, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -1.5 is weight, min value is 0.1, max value is 1000", err.Error())
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
		err := errs.NewValueIsRequiredError("currentStatus")

		assert.Equal(t, "currentStatus", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: currentStatus", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("currentStatus", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: currentStatus (cause: missing required field)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "operation forbidden", errs.ErrOperationForbidden.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "uniqueness violation", errs.ErrUniquenessViolation.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewOperationForbiddenError("cancel", "not the sender"), errs.ErrOperationForbidden)
		require.ErrorIs(t, errs.NewInvalidTransitionError("cancel", "delivered"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewUniquenessViolationError("trackingId", "TRK"), errs.ErrUniquenessViolation)
		require.ErrorIs(t, errs.NewValueIsInvalidError("phone"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("weight", 0, 1, 2), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("note"), errs.ErrValueIsRequired)
	})
}
