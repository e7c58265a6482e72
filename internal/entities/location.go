package entities

import "time"

type GeoPoint struct {
	Lat float64
	Lng float64
}

// CarrierLocation is a carrier's availability record. Only one record per carrier is current.
type CarrierLocation struct {
	ID             string
	CarrierID      string
	CarrierName    string
	Point          GeoPoint
	City           string
	State          string
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	CapacityKg     float64
	EquipmentTypes []EquipmentType
	IsCurrent      bool
	History        CarrierHistory
}

func (l CarrierLocation) Supports(equipment EquipmentType) bool {
	for _, e := range l.EquipmentTypes {
		if e == equipment {
			return true
		}
	}
	return false
}

// CarrierHistory counts finished shipments previously assigned to the carrier.
type CarrierHistory struct {
	Delivered int64
	Cancelled int64
}
