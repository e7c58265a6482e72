package shipment

import (
	"context"
	"errors"
	"fmt"

	"loadhive/internal/entities"
	"loadhive/internal/repository"
	"loadhive/internal/service/matching"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shipment, error) {
	query := `SELECT id, shipper_id, carrier_id, origin_city, origin_state, origin_lat, origin_lng,
			destination_city, destination_state, pickup_date, delivery_date,
			weight_kg, equipment_type, rate, status, created_at, updated_at
		FROM shipments
		WHERE id = $1`

	var s ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ShipperID,
		&s.CarrierID,
		&s.OriginCity,
		&s.OriginState,
		&s.OriginLat,
		&s.OriginLng,
		&s.DestinationCity,
		&s.DestinationState,
		&s.PickupDate,
		&s.DeliveryDate,
		&s.WeightKg,
		&s.EquipmentType,
		&s.Rate,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, matching.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&s), nil
}
