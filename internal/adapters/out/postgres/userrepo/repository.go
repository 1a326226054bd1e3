package userrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AttachParcel registers a parcel on a user's list. Conflicts on the
// composite key are ignored, so repeated attachment is a no-op.
func (r *GormUserRepository) AttachParcel(ctx context.Context, userID, parcelID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}

	dto := UserParcelDTO{
		UserID:   userID.Bytes(),
		ParcelID: parcelID.Bytes(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
