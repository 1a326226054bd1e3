package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrReturnParcelCommandIsNotConstructed = errors.New(
	"ReturnParcelCommand must be created via NewReturnParcelCommand constructor",
)

// ReturnParcelCommand represents the receiver sending an in-transit parcel
// back instead of accepting it.
type ReturnParcelCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnParcelCommand creates a command to return a parcel.
func NewReturnParcelCommand(actorID, parcelID kernel.UUID) (ReturnParcelCommand, error) {
	cmd := ReturnParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setParcelID(parcelID),
	); err != nil {
		return ReturnParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnParcelCommand) Validate() error {
	return c.guard.Validate(ErrReturnParcelCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c ReturnParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ParcelID returns the parcel being returned.
func (c ReturnParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *ReturnParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ReturnParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
