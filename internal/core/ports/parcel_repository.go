// Package ports defines repository interfaces for the parcel domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and mutating parcel entities
// together with their status log audit trail.
type ParcelRepository interface {
	// Add persists a new parcel aggregate together with its initial status log
	// entry. Returns errs.ErrUniquenessViolation when another parcel already
	// holds the same tracking id.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate. The parcel row
	// and any newly appended status log entries are written in the same
	// transaction; log entries are insert-only and never modified.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its internal identifier, including
	// the full status log in chronological order.
	// Returns errs.ErrObjectNotFound when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves a parcel aggregate by its public tracking id.
	// Returns errs.ErrObjectNotFound when no such parcel exists.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error)
}
