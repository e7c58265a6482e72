//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geocoding_test
package geocoding

import (
	"context"

	"loadhive/internal/entities"
	"loadhive/pkg/logger"

	"googlemaps.github.io/maps"
)

type client interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type cache interface {
	Get(ctx context.Context, address string) (entities.GeoPoint, bool, error)
	Set(ctx context.Context, address string, point entities.GeoPoint) error
}

type gatewayLogger interface {
	Warn(msg string, fields ...logger.Field)
}
