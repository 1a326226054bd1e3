package queries

import (
	"context"

	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllParcelsQueryResponse is one page of the admin listing plus the
// pagination metadata derived from the same predicate as the page itself.
type GetAllParcelsQueryResponse struct {
	Parcels []ParcelSummary
	Page    int
	Limit   int
	Total   int64
}

// GetAllParcelsQueryHandler serves the admin parcel listing.
// The page rows and the total count run against the exact same predicate,
// so pagination metadata cannot drift from the visible rows.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for the admin listing.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the listing. Only admins may call it.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAllParcelsQuery,
) (GetAllParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllParcelsQueryResponse{}, err
	}

	actor, err := getActor(ctx, h.db, query.ActorID())
	if err != nil {
		return GetAllParcelsQueryResponse{}, err
	}
	if !actor.isAdmin() {
		return GetAllParcelsQueryResponse{}, errs.NewOperationForbiddenError(
			"list parcels", "caller is not an admin")
	}

	filter := query.Filter()
	parcels := make([]ParcelSummary, 0)

	tx := h.db.WithContext(ctx).Table("parcels")
	if !filter.HasProjection() {
		// The sender's display fields ride along unless the caller narrowed
		// the columns; receiver display fields live on the parcel row itself.
		tx = tx.Select("parcels.*, senders.name AS sender_name, senders.email AS sender_email").
			Joins("JOIN users AS senders ON senders.id = parcels.sender_id")
	}

	result := filter.Apply(tx).Scan(&parcels)
	if result.Error != nil {
		return GetAllParcelsQueryResponse{}, result.Error
	}

	var total int64
	result = h.db.WithContext(ctx).Table("parcels").Scopes(filter.Scope()).Count(&total)
	if result.Error != nil {
		return GetAllParcelsQueryResponse{}, result.Error
	}

	return GetAllParcelsQueryResponse{
		Parcels: parcels,
		Page:    filter.Page(),
		Limit:   filter.Limit(),
		Total:   total,
	}, nil
}
