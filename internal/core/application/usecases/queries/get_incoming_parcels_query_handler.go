package queries

import (
	"context"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetIncomingParcelsQueryHandler retrieves parcels still heading towards the
// acting user. Closed parcels (delivered, returned, cancelled) are excluded;
// they belong to the delivery history view instead.
type GetIncomingParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetIncomingParcelsQueryHandler creates a handler for incoming parcel listings.
func NewGetIncomingParcelsQueryHandler(db *gorm.DB) GetIncomingParcelsQueryHandler {
	return GetIncomingParcelsQueryHandler{db: db}
}

// Handle executes the query, newest parcels first, with the sender account
// joined in as the counterpart.
func (h GetIncomingParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetIncomingParcelsQuery,
) ([]ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := getActor(ctx, h.db, query.ActorID()); err != nil {
		return nil, err
	}

	closed := []string{
		parcel.StatusDelivered.String(),
		parcel.StatusReturned.String(),
		parcel.StatusCancelled.String(),
	}

	parcels := make([]ParcelSummary, 0)

	result := h.db.WithContext(ctx).
		Table("parcels").
		Select("parcels.*, users.name AS counterpart_name, users.email AS counterpart_email, users.phone AS counterpart_phone").
		Joins("JOIN users ON users.id = parcels.sender_id").
		Where("parcels.receiver_id = ?", query.ActorID().Bytes()).
		Where("parcels.current_status NOT IN ?", closed).
		Order("parcels.requested_at DESC").
		Scan(&parcels)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(parcels) == 0 {
		return nil, errs.NewObjectNotFoundError("parcels", query.ActorID().String())
	}

	return parcels, nil
}
