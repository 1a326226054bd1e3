// Package queries contains read operations against the database.
// Implements the query side of the CQRS architecture: handlers read
// denormalized rows directly through GORM and never load aggregates.
package queries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"

	"gorm.io/gorm"
)

// Pagination defaults and bounds for listing queries.
const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

var ErrListFilterIsNotConstructed = errors.New(
	"ListFilter must be created via NewListFilter constructor",
)

// getSearchableColumns lists the columns matched by a searchTerm.
func getSearchableColumns() []string {
	return []string{"current_status", "tracking_id"}
}

// getFilterableColumns maps public query parameter names to exact-match
// columns. Parameters outside this map (and the reserved ones) are rejected.
func getFilterableColumns() map[string]string {
	return map[string]string{
		"currentStatus": "current_status",
		"trackingId":    "tracking_id",
		"senderId":      "sender_id",
		"receiverId":    "receiver_id",
		"isBlocked":     "is_blocked",
		"type":          "parcel_type",
		"city":          "city",
	}
}

// getSortableColumns maps public sort keys to columns.
func getSortableColumns() map[string]string {
	return map[string]string{
		"requestedAt":   "requested_at",
		"deliveredAt":   "delivered_at",
		"trackingId":    "tracking_id",
		"currentStatus": "current_status",
		"deliveryFee":   "delivery_fee",
		"weight":        "weight",
	}
}

// getSelectableColumns maps public field names to projectable columns.
func getSelectableColumns() map[string]string {
	return map[string]string{
		"trackingId":    "tracking_id",
		"currentStatus": "current_status",
		"senderId":      "sender_id",
		"receiverId":    "receiver_id",
		"receiverName":  "receiver_name",
		"city":          "city",
		"type":          "parcel_type",
		"weight":        "weight",
		"deliveryFee":   "delivery_fee",
		"isBlocked":     "is_blocked",
		"requestedAt":   "requested_at",
		"deliveredAt":   "delivered_at",
	}
}

// ListFilter turns raw listing parameters into a database query. A single
// filter drives both the page query and the total count so the two can never
// disagree: Scope carries the shared predicate, Apply adds ordering,
// pagination and projection on top.
//
// Recognized parameters:
//   - searchTerm: case-insensitive substring match across the searchable columns
//   - page, limit: pagination; limit is capped at MaxPageLimit
//   - sort: a sortable key, "-" prefix for descending
//   - fields: comma-separated projection of selectable field names
//   - anything else must name a filterable field and becomes an exact match
type ListFilter struct { //nolint:recvcheck //using for validation
	searchTerm string
	filters    map[string]string
	page       int
	limit      int
	orderBy    string
	columns    []string

	guard guard.ConstructorGuard
}

// NewListFilter parses raw query parameters into a validated filter.
// Unknown parameter names, non-numeric pagination values, and sort or
// projection keys outside the whitelists are rejected.
func NewListFilter(params map[string]string) (ListFilter, error) {
	f := ListFilter{
		filters: make(map[string]string),
		page:    DefaultPage,
		limit:   DefaultPageLimit,
		orderBy: "requested_at DESC",
		guard:   guard.NewConstructorGuard(),
	}

	for name, value := range params {
		var err error
		switch name {
		case "searchTerm":
			f.searchTerm = value
		case "page":
			err = f.setPage(value)
		case "limit":
			err = f.setLimit(value)
		case "sort":
			err = f.setSort(value)
		case "fields":
			err = f.setFields(value)
		default:
			err = f.setFilter(name, value)
		}
		if err != nil {
			return ListFilter{}, err
		}
	}

	return f, nil
}

// Validate ensures the filter was created through the constructor.
func (f ListFilter) Validate() error {
	return f.guard.Validate(ErrListFilterIsNotConstructed)
}

// Page returns the requested page, 1-based.
func (f ListFilter) Page() int {
	return f.page
}

// Limit returns the page size.
func (f ListFilter) Limit() int {
	return f.limit
}

// HasProjection reports whether the caller asked for a column subset.
func (f ListFilter) HasProjection() bool {
	return len(f.columns) > 0
}

// Scope returns the predicate shared by the listing query and its count.
func (f ListFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.searchTerm != "" {
			like := "%" + strings.ToLower(f.searchTerm) + "%"

			searchable := getSearchableColumns()
			conds := make([]string, 0, len(searchable))
			args := make([]any, 0, len(searchable))
			for _, col := range searchable {
				conds = append(conds, "lower("+col+") LIKE ?")
				args = append(args, like)
			}
			db = db.Where(strings.Join(conds, " OR "), args...)
		}

		for col, value := range f.filters {
			db = db.Where(col+" = ?", value)
		}
		return db
	}
}

// Apply builds the full page query: predicate, ordering, pagination and
// optional projection.
func (f ListFilter) Apply(db *gorm.DB) *gorm.DB {
	db = db.Scopes(f.Scope()).
		Order(f.orderBy).
		Limit(f.limit).
		Offset((f.page - 1) * f.limit)

	if len(f.columns) > 0 {
		db = db.Select(f.columns)
	}
	return db
}

func (f *ListFilter) setPage(value string) error {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%q is not a positive integer", value))
	}

	f.page = page
	return nil
}

func (f *ListFilter) setLimit(value string) error {
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		return errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%q is not a positive integer", value))
	}

	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	f.limit = limit
	return nil
}

func (f *ListFilter) setSort(value string) error {
	key := value
	direction := "ASC"
	if strings.HasPrefix(key, "-") {
		key = key[1:]
		direction = "DESC"
	}

	col, ok := getSortableColumns()[key]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not a sortable field", key))
	}

	f.orderBy = col + " " + direction
	return nil
}

func (f *ListFilter) setFields(value string) error {
	// id always rides along so responses stay addressable.
	columns := []string{"id"}

	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		col, ok := getSelectableColumns()[field]
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause("fields",
				fmt.Errorf("%q is not a selectable field", field))
		}
		columns = append(columns, col)
	}

	if len(columns) > 1 {
		f.columns = columns
	}
	return nil
}

func (f *ListFilter) setFilter(name, value string) error {
	col, ok := getFilterableColumns()[name]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("filter",
			fmt.Errorf("%q is not a filterable field", name))
	}

	f.filters[col] = value
	return nil
}
