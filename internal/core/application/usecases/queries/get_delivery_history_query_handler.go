package queries

import (
	"context"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryHistoryQueryHandler retrieves parcels the acting user has
// received, most recent delivery first.
type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHistoryQueryHandler creates a handler for delivery history listings.
func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

// Handle executes the query with the sender account joined in as the counterpart.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) ([]ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := getActor(ctx, h.db, query.ActorID()); err != nil {
		return nil, err
	}

	parcels := make([]ParcelSummary, 0)

	result := h.db.WithContext(ctx).
		Table("parcels").
		Select("parcels.*, users.name AS counterpart_name, users.email AS counterpart_email, users.phone AS counterpart_phone").
		Joins("JOIN users ON users.id = parcels.sender_id").
		Where("parcels.receiver_id = ?", query.ActorID().Bytes()).
		Where("parcels.current_status = ?", parcel.StatusDelivered.String()).
		Order("parcels.delivered_at DESC").
		Scan(&parcels)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(parcels) == 0 {
		return nil, errs.NewObjectNotFoundError("parcels", query.ActorID().String())
	}

	return parcels, nil
}
