package shipment

import "errors"

var (
	ErrInvalidEvent    = errors.New("shipment id and status are required")
	ErrUndefinedStatus = errors.New("undefined shipment status")
)
