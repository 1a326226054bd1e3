package kernel

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not created
// through NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("TrackingID must be created via NewTrackingID or TrackingIDFromString")

var trackingIDPattern = regexp.MustCompile(`^TRK-\d{8}-[0-9A-F]{6}$`)

// TrackingID is the externally shareable identifier of a parcel, distinct
// from its internal store identifier. The format is "TRK-YYYYMMDD-XXXXXX"
// where XXXXXX is a random uppercase hex suffix.
//
// Generation is stateless: the random suffix makes collisions unlikely, and
// the store's unique index is the actual uniqueness authority. A collision
// surfaces as a uniqueness violation and is not retried.
type TrackingID struct {
	value string
}

// NewTrackingID generates a tracking id for the given creation time.
func NewTrackingID(now time.Time) TrackingID {
	raw := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(raw[:3]))
	return TrackingID{value: fmt.Sprintf("TRK-%s-%s", now.UTC().Format("20060102"), suffix)}
}

// TrackingIDFromString parses a tracking id from its string representation.
// Returns an error if the value does not match the tracking id format.
func TrackingIDFromString(s string) (TrackingID, error) {
	if !trackingIDPattern.MatchString(s) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId",
			fmt.Errorf("%q does not match the tracking id format", s))
	}
	return TrackingID{value: s}, nil
}

// String returns the tracking id in its shareable form.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking ids for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate checks if the TrackingID is properly constructed.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	if !trackingIDPattern.MatchString(t.value) {
		return errs.NewValueIsInvalidError("trackingId")
	}
	return nil
}
