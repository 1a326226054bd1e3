package parcel

import (
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// Event identifies what a status log entry records. Most entries accompany a
// status change; rescheduling is a log-only event that leaves the parcel's
// current status untouched, so it carries its own event kind instead of a
// pseudo-status.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// EventStatusChange records a transition of (or re-assertion of) the
	// parcel's current status.
	EventStatusChange

	// EventRescheduled records a receiver-proposed new delivery date.
	// The parcel's current status is unchanged.
	EventRescheduled
)

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventStatusChange: "STATUS_CHANGE",
		EventRescheduled:  "RESCHEDULED",
	}
}

// EventFromString parses an event kind from its wire representation.
func EventFromString(s string) (Event, error) {
	for event, str := range getEventStrings() {
		if str == s {
			return event, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause("event",
		fmt.Errorf("%q is not a valid log event", s))
}

// String returns the wire representation of the event kind.
func (e Event) String() string {
	if s, ok := getEventStrings()[e]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the event kind is one of the defined values.
func (e Event) Validate() error {
	if _, ok := getEventStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("%d is not a valid log event", e))
	}
	return nil
}

// StatusLog is one audit record in a parcel's append-only trail. Entries are
// owned exclusively by their parent parcel, never shared, never deleted, and
// their insertion order is chronological.
type StatusLog struct {
	id        kernel.UUID
	event     Event
	status    Status
	location  string
	note      string
	updatedBy kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewStatusLog creates a log entry with a fresh identifier.
func NewStatusLog(
	event Event,
	status Status,
	location string,
	note string,
	updatedBy kernel.UUID,
	createdAt time.Time,
) (StatusLog, error) {
	return RestoreStatusLog(kernel.NewUUID(), event, status, location, note, updatedBy, createdAt)
}

// RestoreStatusLog reconstructs a log entry from persistence.
func RestoreStatusLog(
	id kernel.UUID,
	event Event,
	status Status,
	location string,
	note string,
	updatedBy kernel.UUID,
	createdAt time.Time,
) (StatusLog, error) {
	if err := id.Validate(); err != nil {
		return StatusLog{}, err
	}
	if err := event.Validate(); err != nil {
		return StatusLog{}, err
	}
	if err := status.Validate(); err != nil {
		return StatusLog{}, err
	}
	if location == "" {
		return StatusLog{}, errs.NewValueIsRequiredError("location")
	}
	if err := updatedBy.Validate(); err != nil {
		return StatusLog{}, err
	}
	if createdAt.IsZero() {
		return StatusLog{}, errs.NewValueIsRequiredError("createdAt")
	}

	return StatusLog{
		id:            id,
		event:         event,
		status:        status,
		location:      location,
		note:          note,
		updatedBy:     updatedBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (l StatusLog) Validate() error {
	if !l.isConstructed {
		return errs.NewValueIsRequiredError("StatusLog must be created via NewStatusLog or RestoreStatusLog")
	}
	return nil
}

// ID returns the entry's unique identifier.
func (l StatusLog) ID() kernel.UUID {
	return l.id
}

// Event returns what kind of event the entry records.
func (l StatusLog) Event() Event {
	return l.event
}

// Status returns the parcel status recorded by the entry. For a
// log-only reschedule event this is the status at the time of the event.
func (l StatusLog) Status() Status {
	return l.status
}

// Location returns where the event was recorded.
func (l StatusLog) Location() string {
	return l.location
}

// Note returns the optional free-form note.
func (l StatusLog) Note() string {
	return l.note
}

// UpdatedBy returns the acting user who caused the entry.
func (l StatusLog) UpdatedBy() kernel.UUID {
	return l.updatedBy
}

// CreatedAt returns when the entry was recorded.
func (l StatusLog) CreatedAt() time.Time {
	return l.createdAt
}
