package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents an admin forcing a parcel into a
// target status, with an optional note for the audit trail.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID
	target   parcel.Status
	note     string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to override a parcel's status.
// The target must be a valid status value.
func NewUpdateParcelStatusCommand(
	actorID, parcelID kernel.UUID,
	target parcel.Status,
	note string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setParcelID(parcelID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ActorID returns the acting admin's identifier.
func (c UpdateParcelStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ParcelID returns the parcel being overridden.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Target returns the status the parcel is forced into.
func (c UpdateParcelStatusCommand) Target() parcel.Status {
	return c.target
}

// Note returns the optional audit note.
func (c UpdateParcelStatusCommand) Note() string {
	return c.note
}

func (c *UpdateParcelStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
