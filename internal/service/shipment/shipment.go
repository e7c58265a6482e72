package shipment

import (
	"context"
	"errors"
	"fmt"

	"loadhive/internal/entities"
	"loadhive/pkg/logger"
)

type Service struct {
	repository    Repository
	statusFactory HandlerFactory
	log           logger.Logger
}

func New(repository Repository, statusFactory HandlerFactory, log logger.Logger) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
		log:           log,
	}
}

// ProcessStatusChange reacts to a lifecycle event. The stored status is authoritative,
// the event only tells which shipment to look at.
func (s *Service) ProcessStatusChange(ctx context.Context, event entities.ShipmentStatusEvent) (*entities.Shipment, error) {
	if event.ShipmentID == "" || event.Status == "" {
		return nil, ErrInvalidEvent
	}

	shipment, err := s.repository.GetByID(ctx, event.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if shipment.Status != event.Status {
		s.log.Warn("shipment status mismatch between event and store",
			logger.NewField("shipment_id", shipment.ID),
			logger.NewField("event_status", event.Status),
			logger.NewField("stored_status", shipment.Status),
		)
	}

	executeFn, err := s.statusFactory.GetHandler(shipment.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return shipment, nil
		}
		return shipment, err
	}

	if err := executeFn(ctx, shipment.ID); err != nil {
		return nil, err
	}

	return shipment, nil
}
