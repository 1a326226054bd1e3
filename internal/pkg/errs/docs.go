// Package errs provides standardized error types for the parcel application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the parcel lifecycle:
//   - ObjectNotFoundError: caller, parcel, or tracking id does not resolve
//   - OperationForbiddenError: role mismatch, non-ownership, or blocked parcel
//   - InvalidTransitionError: operation violates the lifecycle state table
//   - UniquenessViolationError: store uniqueness constraint failure (tracking id)
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     payload and value-object validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The transport layer relies on the sentinels to translate an error chain
// into a stable response kind without parsing message text.
package errs
