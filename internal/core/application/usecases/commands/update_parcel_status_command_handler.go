package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/services"
)

// UpdateParcelStatusCommandHandler handles admin status overrides.
// Admins may force any valid status in any order, with one exception:
// a Delivered parcel is final and cannot be moved off Delivered.
type UpdateParcelStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewUpdateParcelStatusCommandHandler creates a handler for status overrides.
func NewUpdateParcelStatusCommandHandler(uowFactory UoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the status override command.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	if err = h.policy.Authorize(services.OperationUpdateStatus, actor, aggregate); err != nil {
		return err
	}

	if err = aggregate.OverrideStatus(actor.ID(), cmd.Target(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
