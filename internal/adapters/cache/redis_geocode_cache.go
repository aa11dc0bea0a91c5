package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGeocodeCache decorates a Geocoder with a cache-aside Redis
// layer. Coordinates for an address rarely change, so successful
// lookups are kept with a long TTL; failures are never cached.
// Cache outages degrade to direct geocoder calls.
type RedisGeocodeCache struct {
	client *redis.Client
	next   ports.Geocoder
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, next ports.Geocoder, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, next: next, ttl: ttl}
}

type cachedCoordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// normalize collapses whitespace so equivalent addresses share a key.
func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func cacheKey(address string) string {
	return "geocode:" + normalize(address)
}

func (c *RedisGeocodeCache) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	key := cacheKey(address)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var cached cachedCoordinates
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return domain.Coordinates{Lat: cached.Lat, Lon: cached.Lon}, nil
		}
		log.Printf("geocode cache: corrupt entry key=%q", key)
	} else if err != redis.Nil {
		log.Printf("geocode cache read failed key=%q err=%v", key, err)
	}

	coords, err := c.next.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	payload, err := json.Marshal(cachedCoordinates{Lat: coords.Lat, Lon: coords.Lon})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode cache: marshal entry: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("geocode cache write failed key=%q err=%v", key, err)
	}

	return coords, nil
}
