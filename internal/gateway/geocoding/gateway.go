package geocoding

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"loadhive/internal/entities"
	"loadhive/internal/service/matching"
	"loadhive/pkg/logger"
	retrierconfig "loadhive/pkg/retrier"
	"loadhive/pkg/retrier/backoff_adapter"

	"googlemaps.github.io/maps"
)

const (
	serviceName = "google-maps"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	maxRetries      = 3
	randomization   = 0.5
	multiplier      = 2.0
)

// Google Maps API statuses, see https://developers.google.com/maps/documentation/geocoding/requests-geocoding#StatusCodes
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusInvalidRequest = "INVALID_REQUEST"
	statusUnknownError   = "UNKNOWN_ERROR"
	statusTimeout        = "TIMEOUT"
	statusUnknown        = "UNKNOWN"
)

type Gateway struct {
	client  client
	cache   cache
	retrier retrierconfig.Retrier
	log     gatewayLogger
}

func New(client client, cache cache, log gatewayLogger) *Gateway {
	return NewWithRetrier(client, cache, log, backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		MaxRetries:      maxRetries,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
		OnRetry: func(err error, wait time.Duration) {
			log.Warn("geocoding request failed, retrying",
				logger.NewField("error", err),
				logger.NewField("wait", wait.String()),
			)
		},
	}))
}

func NewWithRetrier(client client, cache cache, log gatewayLogger, retrier retrierconfig.Retrier) *Gateway {
	return &Gateway{
		client:  client,
		cache:   cache,
		retrier: retrier,
		log:     log,
	}
}

func NewMapsClient(apiKey string) (*maps.Client, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("google maps client: %w", err)
	}
	return c, nil
}

// Geocode resolves a free-form address. Cache failures degrade to a direct lookup.
func (g *Gateway) Geocode(ctx context.Context, address string) (entities.GeoPoint, error) {
	point, found, err := g.cache.Get(ctx, address)
	switch {
	case err != nil:
		GeocodeCacheTotal.WithLabelValues("error").Inc()
		g.log.Warn("geocode cache read failed",
			logger.NewField("address", address),
			logger.NewField("error", err),
		)
	case found:
		GeocodeCacheTotal.WithLabelValues("hit").Inc()
		return point, nil
	default:
		GeocodeCacheTotal.WithLabelValues("miss").Inc()
	}

	var results []maps.GeocodingResult
	err = g.executeWithMetrics(ctx, "Geocode", func(ctx context.Context) error {
		var err error
		results, err = g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
		return err
	})
	if err != nil {
		status := getStatus(err)
		if status == statusZeroResults || status == statusInvalidRequest {
			return entities.GeoPoint{}, fmt.Errorf("%w: %q", matching.ErrOriginUnresolved, address)
		}
		return entities.GeoPoint{}, fmt.Errorf("gateway geocoding, geocode %q: %w", address, err)
	}

	if len(results) == 0 {
		return entities.GeoPoint{}, fmt.Errorf("%w: %q", matching.ErrOriginUnresolved, address)
	}

	loc := results[0].Geometry.Location
	point = entities.GeoPoint{Lat: loc.Lat, Lng: loc.Lng}

	if err := g.cache.Set(ctx, address, point); err != nil {
		g.log.Warn("geocode cache write failed",
			logger.NewField("address", address),
			logger.NewField("error", err),
		)
	}

	return point, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	switch getStatus(err) {
	case statusOverQueryLimit, statusUnknownError:
		return true
	default:
		return false
	}
}

// latency metric -> attempts metric -> retrier -> client
func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := getStatus(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

// getStatus extracts the API status from errors of the form "maps: OVER_QUERY_LIMIT - ...".
func getStatus(err error) string {
	if err == nil {
		return statusOK
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return statusTimeout
	}

	msg, ok := strings.CutPrefix(err.Error(), "maps: ")
	if !ok {
		return statusUnknown
	}
	status, _, _ := strings.Cut(msg, " ")
	return status
}
