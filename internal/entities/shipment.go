package entities

import "time"

type Shipment struct {
	ID               string
	ShipperID        string
	CarrierID        *string
	OriginCity       string
	OriginState      string
	Origin           *GeoPoint
	DestinationCity  string
	DestinationState string
	PickupDate       time.Time
	DeliveryDate     time.Time
	WeightKg         float64
	Equipment        EquipmentType
	Rate             float64
	Status           ShipmentStatusType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OriginAddress is the free-form address used when the origin point is not stored.
func (s Shipment) OriginAddress() string {
	switch {
	case s.OriginCity == "":
		return s.OriginState
	case s.OriginState == "":
		return s.OriginCity
	default:
		return s.OriginCity + ", " + s.OriginState
	}
}

type ShipmentStatusType string

const (
	ShipmentPosted    ShipmentStatusType = "posted"
	ShipmentAssigned  ShipmentStatusType = "assigned"
	ShipmentInTransit ShipmentStatusType = "in_transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentCancelled ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

type EquipmentType string

const (
	DryVan       EquipmentType = "dry_van"
	Refrigerated EquipmentType = "refrigerated"
	Flatbed      EquipmentType = "flatbed"
	StepDeck     EquipmentType = "step_deck"
	Lowboy       EquipmentType = "lowboy"
	Tanker       EquipmentType = "tanker"
)

func (e EquipmentType) String() string {
	return string(e)
}

func (e EquipmentType) IsValid() bool {
	switch e {
	case DryVan, Refrigerated, Flatbed, StepDeck, Lowboy, Tanker:
		return true
	default:
		return false
	}
}

// ShipmentStatusEvent announces that a shipment moved to a new lifecycle status.
type ShipmentStatusEvent struct {
	ShipmentID string
	Status     ShipmentStatusType
}
