package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetAllParcelsQueryIsNotConstructed = errors.New(
	"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
)

// GetAllParcelsQuery is the admin listing: every parcel in the system,
// searchable, filterable and paginated through a ListFilter.
type GetAllParcelsQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	filter  ListFilter

	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates the admin listing query.
func NewGetAllParcelsQuery(actorID kernel.UUID, filter ListFilter) (GetAllParcelsQuery, error) {
	q := GetAllParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setFilter(filter),
	); err != nil {
		return GetAllParcelsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}

// ActorID returns the acting admin's identifier.
func (q GetAllParcelsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Filter returns the listing filter.
func (q GetAllParcelsQuery) Filter() ListFilter {
	return q.filter
}

func (q *GetAllParcelsQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetAllParcelsQuery) setFilter(filter ListFilter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	q.filter = filter
	return nil
}
