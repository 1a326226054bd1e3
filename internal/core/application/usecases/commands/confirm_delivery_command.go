package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the receiver acknowledging that an
// in-transit parcel has arrived. The note is optional.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery.
func NewConfirmDeliveryCommand(actorID, parcelID kernel.UUID, note string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setParcelID(parcelID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c ConfirmDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ParcelID returns the parcel being confirmed.
func (c ConfirmDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Note returns the optional confirmation note.
func (c ConfirmDeliveryCommand) Note() string {
	return c.note
}

func (c *ConfirmDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ConfirmDeliveryCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
