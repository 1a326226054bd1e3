// Package redis provides the Redis-backed cache for tracking lookups.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"parcel/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
)

const trackingKeyPrefix = "tracking:"

// TrackingCache caches tracking responses under their tracking id with a
// short TTL. A stale entry is at worst one TTL behind the database, which is
// acceptable for the tracking view and saves the two hottest queries.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache creates a tracking cache on top of an existing client.
func NewTrackingCache(client *redis.Client, ttl time.Duration) *TrackingCache {
	return &TrackingCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached response for a tracking id, reporting a miss
// without error when the key is absent.
func (c *TrackingCache) Get(ctx context.Context, trackingID string) (queries.TrackParcelQueryResponse, bool, error) {
	var response queries.TrackParcelQueryResponse

	payload, err := c.client.Get(ctx, trackingKeyPrefix+trackingID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return response, false, nil
		}
		return response, false, err
	}

	if err = json.Unmarshal(payload, &response); err != nil {
		return response, false, err
	}

	return response, true, nil
}

// Set stores a tracking response under its tracking id.
func (c *TrackingCache) Set(ctx context.Context, trackingID string, response queries.TrackParcelQueryResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, trackingKeyPrefix+trackingID, payload, c.ttl).Err()
}
