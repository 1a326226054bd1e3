package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel factory methods.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Parcel is the aggregate root of the delivery lifecycle. It owns the
// append-only status log and enforces the legal state transitions.
//
// Invariants:
//   - trackingId is immutable after creation; uniqueness is enforced by the store
//   - sender and receiver are immutable after creation and never equal
//   - statusLogs only grows; every status change appends exactly one entry
//   - deliveredAt is set exactly once, when the parcel becomes Delivered
//   - a blocked parcel rejects every mutating operation except unblocking
type Parcel struct {
	id           kernel.UUID
	trackingID   kernel.TrackingID
	senderID     kernel.UUID
	receiverID   kernel.UUID
	receiverInfo ReceiverInfo
	details      Details
	deliveryFee  float64
	status       Status
	statusLogs   []StatusLog
	isBlocked    bool
	requestedAt  time.Time
	deliveredAt  *time.Time

	isConstructed bool
}

// NewParcel creates a parcel in Requested status with its initial log entry.
// The sender is the acting user; the initial entry is attributed to them and
// located at the receiver's city.
func NewParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	receiverInfo ReceiverInfo,
	details Details,
	deliveryFee float64,
	now time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		senderID.Validate(),
		receiverID.Validate(),
		receiverInfo.Validate(),
		details.Validate(),
	); err != nil {
		return nil, err
	}
	if senderID.IsEqual(receiverID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("receiver",
			fmt.Errorf("sender and receiver must be different users"))
	}
	if deliveryFee < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%v is negative", deliveryFee))
	}

	p := &Parcel{
		id:            id,
		trackingID:    trackingID,
		senderID:      senderID,
		receiverID:    receiverID,
		receiverInfo:  receiverInfo,
		details:       details,
		deliveryFee:   deliveryFee,
		status:        StatusRequested,
		requestedAt:   now,
		isConstructed: true,
	}

	if err := p.appendLog(EventStatusChange, StatusRequested, receiverInfo.Address().City(),
		"Parcel has been requested by sender.", senderID, now); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel aggregate from persistence.
// The deliveredAt timestamp must be present exactly when the status is
// Delivered.
func RestoreParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	receiverInfo ReceiverInfo,
	details Details,
	deliveryFee float64,
	status Status,
	statusLogs []StatusLog,
	isBlocked bool,
	requestedAt time.Time,
	deliveredAt *time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		senderID.Validate(),
		receiverID.Validate(),
		receiverInfo.Validate(),
		details.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if (status == StatusDelivered) != (deliveredAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("deliveredAt must be set exactly when status is %s", StatusDelivered))
	}
	for _, l := range statusLogs {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	return &Parcel{
		id:            id,
		trackingID:    trackingID,
		senderID:      senderID,
		receiverID:    receiverID,
		receiverInfo:  receiverInfo,
		details:       details,
		deliveryFee:   deliveryFee,
		status:        status,
		statusLogs:    statusLogs,
		isBlocked:     isBlocked,
		requestedAt:   requestedAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's internal store identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingID returns the externally shareable identifier.
func (p *Parcel) TrackingID() kernel.TrackingID {
	return p.trackingID
}

// Sender returns the id of the user who requested the delivery.
func (p *Parcel) Sender() kernel.UUID {
	return p.senderID
}

// Receiver returns the id of the user the parcel is addressed to.
func (p *Parcel) Receiver() kernel.UUID {
	return p.receiverID
}

// ReceiverInfo returns the contact snapshot captured at creation.
func (p *Parcel) ReceiverInfo() ReceiverInfo {
	return p.receiverInfo
}

// Details returns what is being shipped.
func (p *Parcel) Details() Details {
	return p.details
}

// DeliveryFee returns the agreed fee.
func (p *Parcel) DeliveryFee() float64 {
	return p.deliveryFee
}

// Status returns the current lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// StatusLogs returns a copy of the audit trail in chronological order.
func (p *Parcel) StatusLogs() []StatusLog {
	logs := make([]StatusLog, len(p.statusLogs))
	copy(logs, p.statusLogs)
	return logs
}

// IsBlocked reports whether an admin has suspended all mutations.
func (p *Parcel) IsBlocked() bool {
	return p.isBlocked
}

// RequestedAt returns when the parcel was created.
func (p *Parcel) RequestedAt() time.Time {
	return p.requestedAt
}

// DeliveredAt returns when the parcel was delivered, or nil.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Cancel re-asserts Requested status on behalf of the sender and records the
// cancellation. Only possible before the parcel moves.
func (p *Parcel) Cancel(actorID kernel.UUID, now time.Time) error {
	if err := p.status.ValidateCancel(); err != nil {
		return err
	}

	p.status = StatusRequested
	return p.appendLog(EventStatusChange, StatusRequested, "Sender App",
		"Parcel has been cancelled by sender.", actorID, now)
}

// ConfirmDelivery marks the parcel Delivered on behalf of the receiver and
// stamps deliveredAt. An empty note gets a default confirmation message.
func (p *Parcel) ConfirmDelivery(actorID kernel.UUID, note string, now time.Time) error {
	if err := p.status.ValidateConfirmDelivery(); err != nil {
		return err
	}
	if note == "" {
		note = "Parcel has been delivered successfully."
	}

	p.status = StatusDelivered
	p.deliveredAt = &now
	return p.appendLog(EventStatusChange, StatusDelivered, p.receiverInfo.Address().City(),
		note, actorID, now)
}

// Reschedule records a receiver-proposed delivery date. The current status is
// unchanged: this is a log-only event.
func (p *Parcel) Reschedule(actorID kernel.UUID, newDate time.Time, now time.Time) error {
	if err := p.status.ValidateReschedule(); err != nil {
		return err
	}
	if newDate.IsZero() {
		return errs.NewValueIsRequiredError("newDate")
	}

	note := fmt.Sprintf("Parcel delivery rescheduled to %s", newDate.UTC().Format(time.RFC3339))
	return p.appendLog(EventRescheduled, p.status, p.receiverInfo.Address().City(),
		note, actorID, now)
}

// Return marks the parcel Returned on behalf of the receiver.
func (p *Parcel) Return(actorID kernel.UUID, now time.Time) error {
	if err := p.status.ValidateReturn(); err != nil {
		return err
	}

	p.status = StatusReturned
	return p.appendLog(EventStatusChange, StatusReturned, "N/A",
		"Parcel has been returned by receiver", actorID, now)
}

// OverrideStatus forces the status to target on behalf of an admin. Stamps
// deliveredAt when the target is Delivered and it was not already set. An
// empty note gets a default message naming the target status.
func (p *Parcel) OverrideStatus(actorID kernel.UUID, target Status, note string, now time.Time) error {
	if err := p.status.ValidateOverride(target); err != nil {
		return err
	}
	if note == "" {
		note = fmt.Sprintf("Status updated to %s", target)
	}

	p.status = target
	if target == StatusDelivered && p.deliveredAt == nil {
		p.deliveredAt = &now
	}
	return p.appendLog(EventStatusChange, target, "Admin Office", note, actorID, now)
}

// ToggleBlock flips the administrative block flag and reports the new value.
// Intentionally does not append a log entry: blocking is an administrative
// override, not a lifecycle event.
func (p *Parcel) ToggleBlock() bool {
	p.isBlocked = !p.isBlocked
	return p.isBlocked
}

func (p *Parcel) appendLog(
	event Event,
	status Status,
	location string,
	note string,
	actorID kernel.UUID,
	at time.Time,
) error {
	entry, err := NewStatusLog(event, status, location, note, actorID, at)
	if err != nil {
		return err
	}
	p.statusLogs = append(p.statusLogs, entry)
	return nil
}
