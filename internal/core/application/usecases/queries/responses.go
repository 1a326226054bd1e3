package queries

import (
	"context"
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParcelSummary is the read model row shared by the listing queries.
// Column names follow GORM's snake_case convention; the counterpart fields
// are only populated by queries that join the users table.
type ParcelSummary struct {
	ID            uuid.UUID
	TrackingID    string
	CurrentStatus string
	SenderID      uuid.UUID
	ReceiverID    uuid.UUID
	ReceiverName  string
	ReceiverPhone string
	City          string
	ParcelType    string
	Weight        float64
	DeliveryFee   float64
	IsBlocked     bool
	RequestedAt   time.Time
	DeliveredAt   *time.Time

	// Counterpart is the other account on the parcel: the receiver when
	// listing sent parcels, the sender when listing incoming ones.
	CounterpartName  string
	CounterpartEmail string
	CounterpartPhone string

	// Sender display fields, populated only by the admin listing.
	SenderName  string
	SenderEmail string
}

// StatusLogEntry is the read model for one audit trail entry.
type StatusLogEntry struct {
	ID        uuid.UUID
	Event     string
	Status    string
	Location  string
	Note      string
	UpdatedBy uuid.UUID
	CreatedAt time.Time
}

type actorRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	IsActive  string
	IsDeleted bool
}

func (r actorRow) isAdmin() bool {
	return r.Role == user.RoleAdmin.String()
}

// getActor resolves the acting user for a read operation. Deleted accounts
// read as not found, blocked accounts as forbidden, matching the write side.
func getActor(ctx context.Context, db *gorm.DB, id kernel.UUID) (actorRow, error) {
	var row actorRow

	result := db.WithContext(ctx).Table("users").Where("id = ?", id.Bytes()).Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return actorRow{}, errs.NewObjectNotFoundError("userId", id.String())
		}
		return actorRow{}, result.Error
	}

	if row.IsDeleted {
		return actorRow{}, errs.NewObjectNotFoundError("userId", id.String())
	}
	if row.IsActive == user.ActivityBlocked.String() {
		return actorRow{}, errs.NewOperationForbiddenError("read", "acting user is blocked")
	}

	return row, nil
}
