package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/services"
)

// RescheduleDeliveryCommandHandler handles receiver-initiated rescheduling.
// Appends a RESCHEDULED audit entry without touching the parcel's status.
type RescheduleDeliveryCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewRescheduleDeliveryCommandHandler creates a handler for rescheduling.
func NewRescheduleDeliveryCommandHandler(uowFactory UoWFactory) RescheduleDeliveryCommandHandler {
	return RescheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the reschedule command.
func (h *RescheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd RescheduleDeliveryCommand) error {
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

	if err = h.policy.Authorize(services.OperationReschedule, actor, aggregate); err != nil {
		return err
	}

	if err = aggregate.Reschedule(actor.ID(), cmd.NewDate(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
