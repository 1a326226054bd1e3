package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each structured error
// type below unwraps to exactly one of these, so callers (and the HTTP
// adapter) can map an error chain to a response kind without inspecting
// message text.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrOperationForbidden  = errors.New("operation forbidden")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrUniquenessViolation = errors.New("uniqueness violation")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
)

// sanitize strips newlines from formatted messages so multi-line input
// cannot break single-line log records.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object (user, parcel,
// tracking id) does not resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// OperationForbiddenError indicates that the acting user may not perform the
// operation: role mismatch, non-ownership, or a blocked parcel.
type OperationForbiddenError struct {
	Operation string
	Reason    string
	Cause     error
}

// NewOperationForbiddenError creates an OperationForbiddenError without a cause.
func NewOperationForbiddenError(operation, reason string) *OperationForbiddenError {
	return &OperationForbiddenError{Operation: operation, Reason: reason}
}

// NewOperationForbiddenErrorWithCause creates an OperationForbiddenError wrapping a cause.
func NewOperationForbiddenErrorWithCause(operation, reason string, cause error) *OperationForbiddenError {
	return &OperationForbiddenError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *OperationForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)",
			ErrOperationForbidden, e.Operation, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrOperationForbidden, e.Operation, e.Reason))
}

func (e *OperationForbiddenError) Unwrap() error {
	return ErrOperationForbidden
}

// InvalidTransitionError indicates that an operation violates the parcel
// lifecycle state table. CurrentStatus carries the human-readable name of
// the state that blocked the transition.
type InvalidTransitionError struct {
	Operation     string
	CurrentStatus string
	Cause         error
}

// NewInvalidTransitionError creates an InvalidTransitionError without a cause.
func NewInvalidTransitionError(operation, currentStatus string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, CurrentStatus: currentStatus}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping a cause.
func NewInvalidTransitionErrorWithCause(operation, currentStatus string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, CurrentStatus: currentStatus, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed while parcel is %s (cause: %s)",
			ErrInvalidTransition, e.Operation, e.CurrentStatus, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed while parcel is %s",
		ErrInvalidTransition, e.Operation, e.CurrentStatus))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UniquenessViolationError indicates a store uniqueness constraint failure,
// e.g. a tracking id collision. It is surfaced verbatim, never retried.
type UniquenessViolationError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewUniquenessViolationError creates a UniquenessViolationError without a cause.
func NewUniquenessViolationError(paramName string, value any) *UniquenessViolationError {
	return &UniquenessViolationError{ParamName: paramName, Value: value}
}

// NewUniquenessViolationErrorWithCause creates a UniquenessViolationError wrapping a cause.
func NewUniquenessViolationErrorWithCause(paramName string, value any, cause error) *UniquenessViolationError {
	return &UniquenessViolationError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *UniquenessViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s already exists (cause: %s)",
			ErrUniquenessViolation, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s already exists", ErrUniquenessViolation, e.ParamName, e.Value))
}

func (e *UniquenessViolationError) Unwrap() error {
	return ErrUniquenessViolation
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, min, max any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, min, max any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value is missing from an
// otherwise well-formed payload.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
