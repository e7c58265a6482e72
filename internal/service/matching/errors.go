package matching

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidMatchID    = errors.New("invalid match id")
	ErrInvalidShipment   = errors.New("shipment cannot be matched")

	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrOriginUnresolved  = errors.New("shipment origin could not be resolved")
	ErrInvalidTransition = errors.New("invalid match status transition")
	ErrForbidden         = errors.New("caller is not a participant of the match")
)
