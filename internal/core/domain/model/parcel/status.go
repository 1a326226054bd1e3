package parcel

import (
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the correct delivery workflow.
//
// State transitions:
//
//	Requested ──> Approved ──> InTransit ──┬──> Delivered (final)
//	    ^             │            │       └──> Returned
//	    └── cancel ───┘            │
//	                          (reschedule: log-only, state unchanged)
//
// Admins may override the state freely except away from Delivered.
// Cancelled exists in the closed set so an administrative override can
// record it; the sender-facing cancel operation re-asserts Requested.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusRequested is the initial status when a sender creates a parcel.
	StatusRequested

	// StatusApproved indicates the request was accepted for delivery.
	StatusApproved

	// StatusInTransit indicates the parcel is on its way to the receiver.
	StatusInTransit

	// StatusDelivered indicates the parcel reached the receiver.
	// This is a final state: only a redundant Delivered override is allowed afterwards.
	StatusDelivered

	// StatusReturned indicates the receiver sent the parcel back.
	StatusReturned

	// StatusCancelled indicates the delivery was called off administratively.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusRequested: "REQUESTED",
		StatusApproved:  "APPROVED",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusReturned:  "RETURNED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusRequested: "REQUESTED",
		StatusApproved:  "APPROVED",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusReturned:  "RETURNED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses a status from its wire representation
// ("REQUESTED", "APPROVED", "IN_TRANSIT", "DELIVERED", "RETURNED", "CANCELLED").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("currentStatus",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currentStatus",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Human returns the human-readable form used in error messages,
// e.g. StatusInTransit.Human() == "in transit".
func (s Status) Human() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), "_", " ")
}

// ValidateCancel checks that a sender may still cancel from this status.
// Cancellation is only possible before the parcel moves: Requested or Approved.
func (s Status) ValidateCancel() error {
	if s != StatusRequested && s != StatusApproved {
		return errs.NewInvalidTransitionError("cancel", s.Human())
	}
	return nil
}

// ValidateConfirmDelivery checks that the receiver may confirm delivery.
// Only a parcel in transit can be delivered.
func (s Status) ValidateConfirmDelivery() error {
	if s != StatusInTransit {
		return errs.NewInvalidTransitionError("confirm delivery", s.Human())
	}
	return nil
}

// ValidateReschedule checks that the receiver may propose a new delivery date.
// Rescheduling only makes sense while the parcel is in transit.
func (s Status) ValidateReschedule() error {
	if s != StatusInTransit {
		return errs.NewInvalidTransitionError("reschedule", s.Human())
	}
	return nil
}

// ValidateReturn checks that the receiver may return the parcel.
// A delivered parcel gets a distinct error from other non-transit states.
func (s Status) ValidateReturn() error {
	if s == StatusDelivered {
		return errs.NewInvalidTransitionErrorWithCause("return", s.Human(),
			fmt.Errorf("delivered parcel can't be returned"))
	}
	if s != StatusInTransit {
		return errs.NewInvalidTransitionError("return", s.Human())
	}
	return nil
}

// ValidateOverride checks that an admin may force the status to target.
// Delivered is sticky: once delivered, only a redundant Delivered target
// is accepted, and that restriction is an authorization concern rather
// than a state-table one.
func (s Status) ValidateOverride(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s == StatusDelivered && target != StatusDelivered {
		return errs.NewOperationForbiddenError("update status", "parcel is already delivered")
	}
	return nil
}
