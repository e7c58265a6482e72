//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"
	"time"

	"loadhive/internal/entities"
)

type ShipmentRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)
}

type LocationRepository interface {
	ListCandidates(ctx context.Context, equipment entities.EquipmentType, at time.Time) ([]entities.CarrierLocation, error)
}

type MatchRepository interface {
	Upsert(ctx context.Context, match entities.Match) (*entities.Match, error)
	ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.Match, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Match, error)
	UpdateStatus(ctx context.Context, id string, status entities.MatchStatusType) (*entities.Match, error)
	ExpireStale(ctx context.Context, at time.Time) (int64, error)
	ExpirePendingByShipmentID(ctx context.Context, shipmentID string) (int64, error)
}

type Scorer interface {
	Score(shipment entities.Shipment, origin entities.GeoPoint, location entities.CarrierLocation, now time.Time) entities.Match
	Admit(match entities.Match) bool
	Rank(matches []entities.Match) []entities.Match
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (entities.GeoPoint, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
