package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler handles receiver delivery confirmation.
// Marks the parcel Delivered, stamps deliveredAt and appends the audit entry.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the delivery confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if err = h.policy.ValidateActor(actor); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(services.OperationConfirmDelivery, actor, aggregate); err != nil {
		return err
	}

	if err = aggregate.ConfirmDelivery(actor.ID(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
