package queries

import (
	"context"
	"errors"

	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatusLogQueryHandler retrieves a parcel's audit trail.
// Blocked parcels hide their trail from regular users; admins keep access
// so they can investigate why a parcel was blocked.
type GetStatusLogQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusLogQueryHandler creates a handler for status log queries.
func NewGetStatusLogQueryHandler(db *gorm.DB) GetStatusLogQueryHandler {
	return GetStatusLogQueryHandler{db: db}
}

// Handle executes the query and returns entries oldest first.
func (h GetStatusLogQueryHandler) Handle(
	ctx context.Context,
	query GetStatusLogQuery,
) ([]StatusLogEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := getActor(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	var blocked bool
	result := h.db.WithContext(ctx).
		Table("parcels").
		Select("is_blocked").
		Where("id = ?", query.ParcelID().Bytes()).
		Take(&blocked)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelId", query.ParcelID().String())
		}
		return nil, result.Error
	}

	if blocked && !actor.isAdmin() {
		return nil, errs.NewOperationForbiddenError("read status log", "parcel is blocked")
	}

	entries := make([]StatusLogEntry, 0)

	result = h.db.WithContext(ctx).
		Table("status_logs").
		Where("parcel_id = ?", query.ParcelID().Bytes()).
		Order("created_at ASC").
		Scan(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
