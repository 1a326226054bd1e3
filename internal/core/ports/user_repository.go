package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"
)

// UserRepository defines the read and linkage contract for user entities.
// Accounts themselves are owned by the external auth service; this port only
// resolves acting users and maintains the user-to-parcel link table.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// AttachParcel records that a parcel belongs to a user's sent or received
	// list. The operation is idempotent: attaching an already attached parcel
	// is a no-op, which lets the reconciliation job re-run it safely.
	AttachParcel(ctx context.Context, userID kernel.UUID, parcelID kernel.UUID) error
}
