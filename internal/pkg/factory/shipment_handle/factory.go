package shipment_handle

import (
	"context"
	"fmt"

	"loadhive/internal/entities"
	"loadhive/internal/service/shipment"
)

type StatusHandlerFactory struct {
	matchingService shipment.MatchingService
}

func NewStatusHandlerFactory(matchingService shipment.MatchingService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		matchingService: matchingService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.ShipmentStatusType) (shipment.ExecuteFn, error) {
	switch status {
	case entities.ShipmentPosted:
		return f.postedHandler, nil
	case entities.ShipmentAssigned, entities.ShipmentCancelled, entities.ShipmentDelivered:
		return f.closedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", shipment.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) postedHandler(ctx context.Context, shipmentID string) error {
	if _, err := f.matchingService.FindMatches(ctx, shipmentID); err != nil {
		return fmt.Errorf("find matches for posted shipment %s: %w", shipmentID, err)
	}
	return nil
}

// closedHandler runs when the shipment no longer needs a carrier.
func (f *StatusHandlerFactory) closedHandler(ctx context.Context, shipmentID string) error {
	if _, err := f.matchingService.ExpireShipmentMatches(ctx, shipmentID); err != nil {
		return fmt.Errorf("expire matches of shipment %s: %w", shipmentID, err)
	}
	return nil
}
