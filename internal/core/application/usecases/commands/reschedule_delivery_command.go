package commands

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrRescheduleDeliveryCommandIsNotConstructed = errors.New(
		"RescheduleDeliveryCommand must be created via NewRescheduleDeliveryCommand constructor",
	)
	ErrNewDateIsRequired = errors.New("new delivery date is required")
)

// RescheduleDeliveryCommand represents the receiver proposing a new delivery
// date for an in-transit parcel. Rescheduling does not change the parcel's
// status, it only records the proposal on the audit trail.
type RescheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID
	newDate  time.Time

	guard guard.ConstructorGuard
}

// NewRescheduleDeliveryCommand creates a command to reschedule delivery.
// The proposed date must be set.
func NewRescheduleDeliveryCommand(
	actorID, parcelID kernel.UUID,
	newDate time.Time,
) (RescheduleDeliveryCommand, error) {
	cmd := RescheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setParcelID(parcelID),
		cmd.setNewDate(newDate),
	); err != nil {
		return RescheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleDeliveryCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c RescheduleDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ParcelID returns the parcel being rescheduled.
func (c RescheduleDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewDate returns the proposed delivery date.
func (c RescheduleDeliveryCommand) NewDate() time.Time {
	return c.newDate
}

func (c *RescheduleDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RescheduleDeliveryCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RescheduleDeliveryCommand) setNewDate(newDate time.Time) error {
	if newDate.IsZero() {
		return ErrNewDateIsRequired
	}

	c.newDate = newDate
	return nil
}
