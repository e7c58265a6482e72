package location

import "loadhive/internal/entities"

func ToDomain(c *CandidateDB) *entities.CarrierLocation {
	if c == nil {
		return nil
	}

	equipment := make([]entities.EquipmentType, 0, len(c.EquipmentTypes))
	for _, e := range c.EquipmentTypes {
		equipment = append(equipment, entities.EquipmentType(e))
	}

	return &entities.CarrierLocation{
		ID:             c.ID,
		CarrierID:      c.CarrierID,
		CarrierName:    c.CarrierName,
		Point:          entities.GeoPoint{Lat: c.Latitude, Lng: c.Longitude},
		City:           c.City,
		State:          c.State,
		AvailableFrom:  c.AvailableFrom,
		AvailableUntil: c.AvailableUntil,
		CapacityKg:     c.CapacityKg,
		EquipmentTypes: equipment,
		IsCurrent:      c.IsCurrent,
		History: entities.CarrierHistory{
			Delivered: c.Delivered,
			Cancelled: c.Cancelled,
		},
	}
}
