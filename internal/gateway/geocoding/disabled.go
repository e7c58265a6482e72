package geocoding

import (
	"context"
	"fmt"

	"loadhive/internal/entities"
	"loadhive/internal/service/matching"
)

// Disabled is used when no API key is configured: shipments without stored
// coordinates cannot be matched.
type Disabled struct{}

func (Disabled) Geocode(_ context.Context, address string) (entities.GeoPoint, error) {
	return entities.GeoPoint{}, fmt.Errorf("%w: geocoding disabled, address %q", matching.ErrOriginUnresolved, address)
}
