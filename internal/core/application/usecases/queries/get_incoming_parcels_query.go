package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetIncomingParcelsQueryIsNotConstructed = errors.New(
	"GetIncomingParcelsQuery must be created via NewGetIncomingParcelsQuery constructor",
)

// GetIncomingParcelsQuery lists parcels addressed to the acting user that are
// still on their way: delivered, returned and cancelled parcels are excluded.
type GetIncomingParcelsQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetIncomingParcelsQuery creates a query for the acting user's incoming parcels.
func NewGetIncomingParcelsQuery(actorID kernel.UUID) (GetIncomingParcelsQuery, error) {
	q := GetIncomingParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorID(actorID); err != nil {
		return GetIncomingParcelsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIncomingParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetIncomingParcelsQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q GetIncomingParcelsQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetIncomingParcelsQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}
