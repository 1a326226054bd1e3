package commands

import (
	"context"
	"log/slog"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Generates the public tracking id, persists the parcel with its initial
// status log entry, and registers the parcel on both users' parcel lists.
//
// The parcel and its log entry are written in one transaction. The user list
// registrations run after commit as best-effort writes: a failure there never
// fails the request, it is logged and later repaired by the reconciliation
// job, which re-derives the links from the parcels table.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.UserRepository
	policy     services.TransitionPolicy
	logger     *slog.Logger
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// The registry is a non-transactional user repository used for the
// post-commit list registrations.
func NewCreateParcelCommandHandler(
	uowFactory UoWFactory,
	registry ports.UserRepository,
	logger *slog.Logger,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		policy:     services.NewTransitionPolicy(),
		logger:     logger.With("component", "CreateParcelCommandHandler"),
	}
}

// Handle processes the parcel creation command and returns the generated
// tracking id. The sender must be an active account and the receiver must
// exist and not be deleted.
func (h *CreateParcelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateParcelCommand,
) (kernel.TrackingID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	sender, err := userRepo.Get(ctx, cmd.SenderID())
	if err != nil {
		return kernel.TrackingID{}, err
	}
	if err = h.policy.ValidateActor(sender); err != nil {
		return kernel.TrackingID{}, err
	}

	receiver, err := userRepo.Get(ctx, cmd.ReceiverID())
	if err != nil {
		return kernel.TrackingID{}, err
	}
	if receiver.IsDeleted() {
		return kernel.TrackingID{}, errs.NewObjectNotFoundError("receiverId", receiver.ID().String())
	}

	now := time.Now().UTC()
	trackingID := kernel.NewTrackingID(now)

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		trackingID,
		cmd.SenderID(),
		cmd.ReceiverID(),
		cmd.ReceiverInfo(),
		cmd.Details(),
		cmd.DeliveryFee(),
		now,
	)
	if err != nil {
		return kernel.TrackingID{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return kernel.TrackingID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	h.attachToList(ctx, cmd.SenderID(), cmd.ParcelID())
	h.attachToList(ctx, cmd.ReceiverID(), cmd.ParcelID())

	return trackingID, nil
}

func (h *CreateParcelCommandHandler) attachToList(ctx context.Context, userID, parcelID kernel.UUID) {
	if err := h.registry.AttachParcel(ctx, userID, parcelID); err != nil {
		h.logger.WarnContext(ctx, "failed to register parcel on user list, reconciliation will retry",
			"userId", userID.String(),
			"parcelId", parcelID.String(),
			"error", err)
	}
}
