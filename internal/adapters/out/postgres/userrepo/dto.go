// Package userrepo provides read access to user accounts and maintains the
// user-to-parcel link table. Accounts are owned by the external auth service;
// this package never creates or mutates them.
package userrepo

import (
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure of a user account.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Role      string `gorm:"type:varchar(16)"`
	IsActive  string `gorm:"type:varchar(16)"`
	IsDeleted bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// UserParcelDTO links a user to a parcel on their sent or received list.
// The composite primary key makes registrations naturally idempotent.
type UserParcelDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for user-parcel links.
func (UserParcelDTO) TableName() string {
	return "user_parcels"
}

// toDomain converts a database DTO to a user entity using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	activity, err := user.ActivityFromString(dto.IsActive)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone, role, activity, dto.IsDeleted)
}
