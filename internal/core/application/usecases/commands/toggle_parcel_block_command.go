package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrToggleParcelBlockCommandIsNotConstructed = errors.New(
	"ToggleParcelBlockCommand must be created via NewToggleParcelBlockCommand constructor",
)

// ToggleParcelBlockCommand represents an admin flipping a parcel's block
// flag. Blocking freezes every lifecycle mutation until unblocked.
type ToggleParcelBlockCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleParcelBlockCommand creates a command to toggle the block flag.
func NewToggleParcelBlockCommand(actorID, parcelID kernel.UUID) (ToggleParcelBlockCommand, error) {
	cmd := ToggleParcelBlockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setParcelID(parcelID),
	); err != nil {
		return ToggleParcelBlockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleParcelBlockCommand) Validate() error {
	return c.guard.Validate(ErrToggleParcelBlockCommandIsNotConstructed)
}

// ActorID returns the acting admin's identifier.
func (c ToggleParcelBlockCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ParcelID returns the parcel whose flag is toggled.
func (c ToggleParcelBlockCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *ToggleParcelBlockCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ToggleParcelBlockCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
