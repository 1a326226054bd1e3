package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetStatusLogQueryIsNotConstructed = errors.New(
	"GetStatusLogQuery must be created via NewGetStatusLogQuery constructor",
)

// GetStatusLogQuery retrieves a parcel's audit trail in chronological order.
type GetStatusLogQuery struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusLogQuery creates a query for a parcel's status log.
func NewGetStatusLogQuery(actorID, parcelID kernel.UUID) (GetStatusLogQuery, error) {
	q := GetStatusLogQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setParcelID(parcelID),
	); err != nil {
		return GetStatusLogQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusLogQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusLogQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q GetStatusLogQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ParcelID returns the parcel whose trail is requested.
func (q GetStatusLogQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

func (q *GetStatusLogQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetStatusLogQuery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	q.parcelID = parcelID
	return nil
}
