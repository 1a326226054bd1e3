package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrDeliveryFeeIsInvalid = errors.New("delivery fee must not be negative")
)

// CreateParcelCommand represents a sender's request to ship a new parcel.
// Encapsulates the receiver snapshot, the package details and the agreed fee.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, senderID, receiverID, info, details, 120)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, registry)
//	trackingID, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	senderID     kernel.UUID
	receiverID   kernel.UUID
	receiverInfo parcel.ReceiverInfo
	details      parcel.Details
	deliveryFee  float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identifiers, the receiver snapshot, the package details and the
// fee. Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	receiverInfo parcel.ReceiverInfo,
	details parcel.Details,
	deliveryFee float64,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setReceiverInfo(receiverInfo),
		cmd.setDetails(details),
		cmd.setDeliveryFee(deliveryFee),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// SenderID returns the acting user requesting the delivery.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the user the parcel is addressed to.
func (c CreateParcelCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// ReceiverInfo returns the receiver contact snapshot.
func (c CreateParcelCommand) ReceiverInfo() parcel.ReceiverInfo {
	return c.receiverInfo
}

// Details returns what is being shipped.
func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

// DeliveryFee returns the agreed fee.
func (c CreateParcelCommand) DeliveryFee() float64 {
	return c.deliveryFee
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}

	c.receiverID = receiverID
	return nil
}

func (c *CreateParcelCommand) setReceiverInfo(receiverInfo parcel.ReceiverInfo) error {
	if err := receiverInfo.Validate(); err != nil {
		return err
	}

	c.receiverInfo = receiverInfo
	return nil
}

func (c *CreateParcelCommand) setDetails(details parcel.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateParcelCommand) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return ErrDeliveryFeeIsInvalid
	}

	c.deliveryFee = deliveryFee
	return nil
}
