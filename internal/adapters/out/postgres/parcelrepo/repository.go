package parcelrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel and its initial status log entries.
// A duplicate tracking id surfaces as a uniqueness violation so callers can
// map it to a conflict instead of a generic database error.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewUniquenessViolationErrorWithCause(
				"trackingId", aggregate.TrackingID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel's mutable columns and inserts any status
// log entries appended since the aggregate was loaded. Log rows are keyed by
// their own UUIDs, so re-inserting existing entries is a no-op and the write
// stays idempotent inside the surrounding transaction.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("current_status", "is_blocked", "delivered_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcelId", aggregate.ID().String())
	}

	if len(dto.StatusLogs) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.StatusLogs).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID with its full status log.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, "id = ?", id.Bytes(), "parcelId", id.String())
}

// GetByTrackingID retrieves a parcel by its public tracking id.
func (r *GormParcelRepository) GetByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*parcel.Parcel, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, "tracking_id = ?", trackingID.String(), "trackingId", trackingID.String())
}

func (r *GormParcelRepository) getOne(
	ctx context.Context,
	cond string,
	value any,
	paramName string,
	paramValue string,
) (*parcel.Parcel, error) {
	var dto ParcelDTO

	err := r.db.WithContext(ctx).
		Preload("StatusLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("status_logs.created_at ASC")
		}).
		First(&dto, cond, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, paramValue)
		}
		return nil, err
	}

	return toDomain(dto)
}
