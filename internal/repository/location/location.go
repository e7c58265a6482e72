package location

import (
	"context"
	"fmt"
	"time"

	"loadhive/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListCandidates returns current availability records of carriers offering the equipment
// and still available at the given moment, with their delivery history.
func (r *Repository) ListCandidates(ctx context.Context, equipment entities.EquipmentType, at time.Time) ([]entities.CarrierLocation, error) {
	query, args, err := candidatesQuery(equipment, at).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository build candidates query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list candidates error: %w", err)
	}

	candidates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.CarrierLocation, error) {
		var c CandidateDB
		err := row.Scan(
			&c.ID,
			&c.CarrierID,
			&c.CarrierName,
			&c.Latitude,
			&c.Longitude,
			&c.City,
			&c.State,
			&c.AvailableFrom,
			&c.AvailableUntil,
			&c.CapacityKg,
			&c.EquipmentTypes,
			&c.IsCurrent,
			&c.Delivered,
			&c.Cancelled,
		)
		if err != nil {
			return entities.CarrierLocation{}, err
		}
		return *ToDomain(&c), nil
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository scan candidates error: %w", err)
	}

	return candidates, nil
}

func candidatesQuery(equipment entities.EquipmentType, at time.Time) sq.SelectBuilder {
	return qb.
		Select(
			"l.id",
			"l.carrier_id",
			"COALESCE(NULLIF(p.company_name, ''), p.full_name)",
			"l.latitude",
			"l.longitude",
			"COALESCE(l.city, '')",
			"COALESCE(l.state, '')",
			"l.available_from",
			"l.available_until",
			"l.capacity_kg",
			"l.equipment_types",
			"l.is_current",
			"COUNT(s.id) FILTER (WHERE s.status = 'delivered')",
			"COUNT(s.id) FILTER (WHERE s.status = 'cancelled')",
		).
		From("locations l").
		Join("profiles p ON p.id = l.carrier_id").
		LeftJoin("shipments s ON s.carrier_id = l.carrier_id AND s.status IN ('delivered', 'cancelled')").
		Where(sq.Eq{"l.is_current": true, "p.role": entities.RoleCarrier.String()}).
		Where(sq.Or{
			sq.Eq{"l.available_until": nil},
			sq.GtOrEq{"l.available_until": at},
		}).
		Where(sq.Expr("? = ANY(l.equipment_types)", equipment.String())).
		GroupBy("l.id", "p.id").
		OrderBy("l.carrier_id")
}
