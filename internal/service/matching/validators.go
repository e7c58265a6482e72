package matching

import (
	"fmt"

	"loadhive/internal/entities"
	"loadhive/internal/pkg/geo"

	"github.com/google/uuid"
)

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validateShipment(s *entities.Shipment) error {
	if s.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidShipment)
	}
	if !s.Equipment.IsValid() {
		return fmt.Errorf("%w: unknown equipment type %q", ErrInvalidShipment, s.Equipment)
	}
	if s.Origin != nil && !geo.Valid(*s.Origin) {
		return fmt.Errorf("%w: origin coordinates out of range", ErrInvalidShipment)
	}
	return nil
}

// canTransition checks that caller takes part in the match for the requested status.
// Contacting is also open to the shipper that owns the shipment.
func canTransition(caller entities.Caller, match *entities.Match, shipment *entities.Shipment, target entities.MatchStatusType) bool {
	if caller.UserID == "" {
		return false
	}
	if caller.IsAdmin() || caller.UserID == match.CarrierID {
		return true
	}
	return target == entities.MatchContacted && shipment != nil && shipment.ShipperID == caller.UserID
}
