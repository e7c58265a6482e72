package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loadhive/internal/entities"
	"loadhive/internal/repository"
	"loadhive/internal/service/matching"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const matchColumns = `m.id, m.shipment_id, m.carrier_id, COALESCE(NULLIF(p.company_name, ''), p.full_name),
	m.match_score, m.distance_km, m.estimated_cost, m.estimated_duration_hours,
	m.compatibility_factors, m.ai_insights, m.status, m.expires_at, m.created_at, m.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert stores a scored match. A live row for the same shipment and carrier gets fresh score
// fields and expiry but keeps its id and status. Expired rows are left as they are and the
// match is inserted as a new pending row.
func (r *Repository) Upsert(ctx context.Context, match entities.Match) (*entities.Match, error) {
	m := FromDomain(&match)

	query, args, err := qb.
		Insert("load_matches").
		Columns(
			"id", "shipment_id", "carrier_id", "match_score", "distance_km", "estimated_cost",
			"estimated_duration_hours", "compatibility_factors", "ai_insights", "status",
			"expires_at", "created_at", "updated_at",
		).
		Values(
			m.ID, m.ShipmentID, m.CarrierID, m.MatchScore, m.DistanceKm, m.EstimatedCost,
			m.EstimatedDurationHours, m.CompatibilityFactors, m.AIInsights, m.Status,
			m.ExpiresAt, m.CreatedAt, m.UpdatedAt,
		).
		Suffix(`ON CONFLICT (shipment_id, carrier_id) WHERE status <> 'expired' DO UPDATE SET
			match_score = EXCLUDED.match_score,
			distance_km = EXCLUDED.distance_km,
			estimated_cost = EXCLUDED.estimated_cost,
			estimated_duration_hours = EXCLUDED.estimated_duration_hours,
			compatibility_factors = EXCLUDED.compatibility_factors,
			ai_insights = EXCLUDED.ai_insights,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id, status, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository build upsert error: %w", err)
	}

	err = r.querier.QueryRow(ctx, query, args...).Scan(&m.ID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: %w", matching.ErrShipmentNotFound, err)
		}
		return nil, fmt.Errorf("unexpected match repository upsert error: %w", err)
	}

	persisted := ToDomain(m)
	persisted.RawScore = match.RawScore
	return persisted, nil
}

func (r *Repository) ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM load_matches m
		JOIN profiles p ON p.id = m.carrier_id
		WHERE m.shipment_id = $1
		ORDER BY m.match_score DESC, m.distance_km ASC NULLS LAST, m.carrier_id ASC`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository list error: %w", err)
	}

	matches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Match, error) {
		m, err := scanMatch(row)
		if err != nil {
			return entities.Match{}, err
		}
		return *ToDomain(m), nil
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository scan error: %w", err)
	}

	return matches, nil
}

// GetByIDForUpdate locks the match row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM load_matches m
		JOIN profiles p ON p.id = m.carrier_id
		WHERE m.id = $1
		FOR UPDATE OF m`

	m, err := scanMatch(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, matching.ErrMatchNotFound
		}
		return nil, fmt.Errorf("unexpected match repository get error: %w", err)
	}

	return ToDomain(m), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.MatchStatusType) (*entities.Match, error) {
	query := `WITH m AS (
			UPDATE load_matches
			SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + matchColumns + `
		FROM m
		JOIN profiles p ON p.id = m.carrier_id`

	m, err := scanMatch(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matching.ErrMatchNotFound
		}
		return nil, fmt.Errorf("unexpected match repository update status error: %w", err)
	}

	return ToDomain(m), nil
}

func (r *Repository) ExpireStale(ctx context.Context, at time.Time) (int64, error) {
	query, args, err := qb.
		Update("load_matches").
		Set("status", entities.MatchExpired.String()).
		Set("updated_at", at).
		Where(sq.Eq{"status": entities.MatchPending.String()}).
		Where(sq.Lt{"expires_at": at}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository build expire error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository expire stale error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ExpirePendingByShipmentID(ctx context.Context, shipmentID string) (int64, error) {
	query := `UPDATE load_matches
		SET status = 'expired', updated_at = NOW()
		WHERE shipment_id = $1 AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, shipmentID)
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository expire by shipment error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanMatch(row pgx.Row) (*MatchDB, error) {
	var m MatchDB
	err := row.Scan(
		&m.ID,
		&m.ShipmentID,
		&m.CarrierID,
		&m.CarrierName,
		&m.MatchScore,
		&m.DistanceKm,
		&m.EstimatedCost,
		&m.EstimatedDurationHours,
		&m.CompatibilityFactors,
		&m.AIInsights,
		&m.Status,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
