package shipment_status_changed

type statusChangedEvent struct {
	ShipmentID string `json:"shipment_id"`
	Status     string `json:"status"`
}
