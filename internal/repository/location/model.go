package location

import "time"

type CandidateDB struct {
	ID             string
	CarrierID      string
	CarrierName    string
	Latitude       float64
	Longitude      float64
	City           string
	State          string
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	CapacityKg     float64
	EquipmentTypes []string
	IsCurrent      bool
	Delivered      int64
	Cancelled      int64
}
