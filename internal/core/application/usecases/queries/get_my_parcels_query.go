package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetMyParcelsQueryIsNotConstructed = errors.New(
	"GetMyParcelsQuery must be created via NewGetMyParcelsQuery constructor",
)

// GetMyParcelsQuery lists every parcel the acting user has sent, newest
// first, with the receiver account populated as the counterpart.
type GetMyParcelsQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyParcelsQuery creates a query for the acting user's sent parcels.
func NewGetMyParcelsQuery(actorID kernel.UUID) (GetMyParcelsQuery, error) {
	q := GetMyParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorID(actorID); err != nil {
		return GetMyParcelsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyParcelsQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q GetMyParcelsQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetMyParcelsQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}
