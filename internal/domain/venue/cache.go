package venue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "venue:"

// Cache is a read-through Redis cache for single-venue lookups. A nil client
// disables caching; every operation becomes a no-op miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates venue cache
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached venue, or nil on miss or any Redis failure
func (c *Cache) Get(ctx context.Context, id uuid.UUID) *Venue {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, cacheKeyPrefix+id.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("venue_id", id.String()).Msg("venue cache read failed")
		}
		return nil
	}

	var v Venue
	if err := json.Unmarshal(data, &v); err != nil {
		// stale or corrupt entry; drop it
		c.client.Del(ctx, cacheKeyPrefix+id.String())
		return nil
	}
	return &v
}

// Set stores the venue with the configured TTL
func (c *Cache) Set(ctx context.Context, v *Venue) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+v.ID.String(), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("venue_id", v.ID.String()).Msg("venue cache write failed")
	}
}

// Invalidate drops the cached entry after a write
func (c *Cache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKeyPrefix+id.String()).Err(); err != nil {
		log.Warn().Err(err).Str("venue_id", id.String()).Msg("venue cache invalidation failed")
	}
}
