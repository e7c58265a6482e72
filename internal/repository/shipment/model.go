package shipment

import "time"

type ShipmentDB struct {
	ID               string
	ShipperID        string
	CarrierID        *string
	OriginCity       string
	OriginState      string
	OriginLat        *float64
	OriginLng        *float64
	DestinationCity  string
	DestinationState string
	PickupDate       time.Time
	DeliveryDate     time.Time
	WeightKg         float64
	EquipmentType    string
	Rate             float64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
