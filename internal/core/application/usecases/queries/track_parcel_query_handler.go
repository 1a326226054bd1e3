package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryResponse is the tracking view of one parcel: the current
// position in the lifecycle plus the full audit trail.
type TrackParcelQueryResponse struct {
	TrackingID    string           `json:"trackingId"`
	CurrentStatus string           `json:"currentStatus"`
	City          string           `json:"city"`
	RequestedAt   time.Time        `json:"requestedAt"`
	DeliveredAt   *time.Time       `json:"deliveredAt,omitempty"`
	Trail         []StatusLogEntry `json:"trail"`
}

// TrackingCache is a read-through cache for tracking lookups. Tracking is by
// far the hottest read path and tolerates slightly stale data, so responses
// are cached under the tracking id with a short TTL.
type TrackingCache interface {
	Get(ctx context.Context, trackingID string) (TrackParcelQueryResponse, bool, error)
	Set(ctx context.Context, trackingID string, response TrackParcelQueryResponse) error
}

// TrackParcelQueryHandler serves tracking lookups by public tracking id.
// Cache failures are logged and the lookup falls through to the database;
// the cache never decides correctness.
type TrackParcelQueryHandler struct {
	db     *gorm.DB
	cache  TrackingCache
	logger *slog.Logger
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB, cache TrackingCache, logger *slog.Logger) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "TrackParcelQueryHandler"),
	}
}

// Handle executes the tracking lookup.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	actor, err := getActor(ctx, h.db, query.ActorID())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	trackingID := query.TrackingID().String()

	if cached, ok, cacheErr := h.cache.Get(ctx, trackingID); cacheErr != nil {
		h.logger.WarnContext(ctx, "tracking cache read failed", "trackingId", trackingID, "error", cacheErr)
	} else if ok {
		return cached, nil
	}

	var row struct {
		CurrentStatus string
		City          string
		IsBlocked     bool
		RequestedAt   time.Time
		DeliveredAt   *time.Time
	}

	result := h.db.WithContext(ctx).
		Table("parcels").
		Select("id, current_status, city, is_blocked, requested_at, delivered_at").
		Where("tracking_id = ?", trackingID).
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingId", trackingID)
		}
		return TrackParcelQueryResponse{}, result.Error
	}

	if row.IsBlocked && !actor.isAdmin() {
		return TrackParcelQueryResponse{}, errs.NewOperationForbiddenError("track", "parcel is blocked")
	}

	trail := make([]StatusLogEntry, 0)
	result = h.db.WithContext(ctx).
		Table("status_logs").
		Joins("JOIN parcels ON parcels.id = status_logs.parcel_id").
		Where("parcels.tracking_id = ?", trackingID).
		Order("status_logs.created_at ASC").
		Select("status_logs.*").
		Scan(&trail)
	if result.Error != nil {
		return TrackParcelQueryResponse{}, result.Error
	}

	response := TrackParcelQueryResponse{
		TrackingID:    trackingID,
		CurrentStatus: row.CurrentStatus,
		City:          row.City,
		RequestedAt:   row.RequestedAt,
		DeliveredAt:   row.DeliveredAt,
		Trail:         trail,
	}

	// Blocked parcels are never cached: a cache hit skips the block check,
	// so only responses visible to everyone may be served from cache.
	if !row.IsBlocked {
		if cacheErr := h.cache.Set(ctx, trackingID, response); cacheErr != nil {
			h.logger.WarnContext(ctx, "tracking cache write failed", "trackingId", trackingID, "error", cacheErr)
		}
	}

	return response, nil
}
