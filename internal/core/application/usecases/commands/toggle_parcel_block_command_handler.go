package commands

import (
	"context"

	"parcel/internal/core/domain/services"
)

// ToggleParcelBlockCommandHandler handles admin block toggling.
// Toggling is the one operation permitted on a blocked parcel, otherwise an
// admin could never unblock it. No audit entry is written.
type ToggleParcelBlockCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewToggleParcelBlockCommandHandler creates a handler for block toggling.
func NewToggleParcelBlockCommandHandler(uowFactory UoWFactory) ToggleParcelBlockCommandHandler {
	return ToggleParcelBlockCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the toggle command and reports the new blocked state.
func (h *ToggleParcelBlockCommandHandler) Handle(ctx context.Context, cmd ToggleParcelBlockCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return false, err
	}
	if err = h.policy.ValidateActor(actor); err != nil {
		return false, err
	}

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return false, err
	}

	if err = h.policy.Authorize(services.OperationToggleBlock, actor, aggregate); err != nil {
		return false, err
	}

	blocked := aggregate.ToggleBlock()

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return blocked, nil
}
