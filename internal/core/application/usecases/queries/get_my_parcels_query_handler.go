package queries

import (
	"context"

	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMyParcelsQueryHandler retrieves the acting user's sent parcels.
// Uses direct SQL reads for optimal performance in the CQRS pattern.
//
// An empty result reads as not found. Callers with no parcels get a 404
// rather than an empty page, mirroring the mobile app's expectations.
type GetMyParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyParcelsQueryHandler creates a handler for sent parcel listings.
// Requires a GORM database connection for query execution.
func NewGetMyParcelsQueryHandler(db *gorm.DB) GetMyParcelsQueryHandler {
	return GetMyParcelsQueryHandler{db: db}
}

// Handle executes the query, newest parcels first, with the receiver account
// joined in as the counterpart.
func (h GetMyParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetMyParcelsQuery,
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
		Joins("JOIN users ON users.id = parcels.receiver_id").
		Where("parcels.sender_id = ?", query.ActorID().Bytes()).
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
