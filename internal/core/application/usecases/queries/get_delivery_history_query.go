package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
)

// GetDeliveryHistoryQuery lists parcels the acting user has already received.
type GetDeliveryHistoryQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a query for the acting user's received parcels.
func NewGetDeliveryHistoryQuery(actorID kernel.UUID) (GetDeliveryHistoryQuery, error) {
	q := GetDeliveryHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorID(actorID); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q GetDeliveryHistoryQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetDeliveryHistoryQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}
