package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand represents a sender's request to call off a parcel
// that has not started moving yet.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a parcel.
// Both the acting user id and the parcel id must be valid.
func NewCancelParcelCommand(actorID, parcelID kernel.UUID) (CancelParcelCommand, error) {
	cmd := CancelParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setParcelID(parcelID),
	); err != nil {
		return CancelParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c CancelParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ParcelID returns the parcel to cancel.
func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *CancelParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CancelParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
