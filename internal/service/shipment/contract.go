//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"loadhive/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)
}

type MatchingService interface {
	FindMatches(ctx context.Context, shipmentID string) ([]entities.Match, error)
	ExpireShipmentMatches(ctx context.Context, shipmentID string) (int64, error)
}

type (
	ExecuteFn      func(ctx context.Context, shipmentID string) error
	HandlerFactory interface {
		GetHandler(status entities.ShipmentStatusType) (ExecuteFn, error)
	}
)
