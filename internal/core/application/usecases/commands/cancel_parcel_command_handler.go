package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/services"
)

// CancelParcelCommandHandler handles sender-initiated cancellation.
// Only the sender may cancel, and only while the parcel is still in
// Requested or Approved status.
type CancelParcelCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewCancelParcelCommandHandler creates a handler for cancellation operations.
func NewCancelParcelCommandHandler(uowFactory UoWFactory) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the cancellation command.
// Resolves the acting user first, then the parcel, authorizes the operation
// and applies the transition, persisting the parcel with its new log entry.
func (h *CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) error {
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

	if err = h.policy.Authorize(services.OperationCancel, actor, aggregate); err != nil {
		return err
	}

	if err = aggregate.Cancel(actor.ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
