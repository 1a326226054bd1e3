package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery resolves a parcel by its public tracking id. This is the
// lookup behind the "where is my parcel" flow, so it is keyed by the id
// printed on the label rather than the internal store identifier.
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	actorID    kernel.UUID
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query.
func NewTrackParcelQuery(actorID kernel.UUID, trackingID kernel.TrackingID) (TrackParcelQuery, error) {
	q := TrackParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setTrackingID(trackingID),
	); err != nil {
		return TrackParcelQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q TrackParcelQuery) ActorID() kernel.UUID {
	return q.actorID
}

// TrackingID returns the public identifier being tracked.
func (q TrackParcelQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

func (q *TrackParcelQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *TrackParcelQuery) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	q.trackingID = trackingID
	return nil
}
