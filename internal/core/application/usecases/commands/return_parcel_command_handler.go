package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/services"
)

// ReturnParcelCommandHandler handles receiver-initiated returns.
// Marks the parcel Returned and appends the audit entry. Delivered parcels
// can no longer be returned.
type ReturnParcelCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewReturnParcelCommandHandler creates a handler for return operations.
func NewReturnParcelCommandHandler(uowFactory UoWFactory) ReturnParcelCommandHandler {
	return ReturnParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the return command.
func (h *ReturnParcelCommandHandler) Handle(ctx context.Context, cmd ReturnParcelCommand) error {
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

	if err = h.policy.Authorize(services.OperationReturn, actor, aggregate); err != nil {
		return err
	}

	if err = aggregate.Return(actor.ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
