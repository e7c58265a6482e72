package geocache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"loadhive/internal/entities"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:"

// Cache keeps geocoding results in redis as "lat,lng" strings.
type Cache struct {
	client Client
	ttl    time.Duration
}

func New(client Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get reports false on a miss.
func (c *Cache) Get(ctx context.Context, address string) (entities.GeoPoint, bool, error) {
	val, err := c.client.Get(ctx, Key(address)).Result()
	if errors.Is(err, redis.Nil) {
		return entities.GeoPoint{}, false, nil
	}
	if err != nil {
		return entities.GeoPoint{}, false, fmt.Errorf("geocache get: %w", err)
	}

	point, err := parsePoint(val)
	if err != nil {
		return entities.GeoPoint{}, false, fmt.Errorf("geocache decode %q: %w", val, err)
	}
	return point, true, nil
}

func (c *Cache) Set(ctx context.Context, address string, point entities.GeoPoint) error {
	val := strconv.FormatFloat(point.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(point.Lng, 'f', -1, 64)

	if err := c.client.Set(ctx, Key(address), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("geocache set: %w", err)
	}
	return nil
}

// Key normalizes the address so "Lagos,  LA" and "lagos, la" share an entry.
func Key(address string) string {
	return keyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func parsePoint(val string) (entities.GeoPoint, error) {
	latRaw, lngRaw, ok := strings.Cut(val, ",")
	if !ok {
		return entities.GeoPoint{}, errors.New("missing separator")
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return entities.GeoPoint{}, err
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return entities.GeoPoint{}, err
	}
	return entities.GeoPoint{Lat: lat, Lng: lng}, nil
}
