package shipment

import "loadhive/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipment := &entities.Shipment{
		ID:               s.ID,
		ShipperID:        s.ShipperID,
		CarrierID:        s.CarrierID,
		OriginCity:       s.OriginCity,
		OriginState:      s.OriginState,
		DestinationCity:  s.DestinationCity,
		DestinationState: s.DestinationState,
		PickupDate:       s.PickupDate.UTC(),
		DeliveryDate:     s.DeliveryDate.UTC(),
		WeightKg:         s.WeightKg,
		Equipment:        entities.EquipmentType(s.EquipmentType),
		Rate:             s.Rate,
		Status:           entities.ShipmentStatusType(s.Status),
		CreatedAt:        s.CreatedAt.UTC(),
		UpdatedAt:        s.UpdatedAt.UTC(),
	}
	if s.OriginLat != nil && s.OriginLng != nil {
		shipment.Origin = &entities.GeoPoint{Lat: *s.OriginLat, Lng: *s.OriginLng}
	}
	return shipment
}
