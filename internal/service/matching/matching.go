package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loadhive/internal/entities"
	"loadhive/pkg/logger"

	"github.com/google/uuid"
)

type Config struct {
	MatchTTL time.Duration
}

type Option func(*Matching)

func WithClock(now func() time.Time) Option {
	return func(m *Matching) {
		m.now = now
	}
}

type Matching struct {
	shipments ShipmentRepository
	locations LocationRepository
	matches   MatchRepository
	scorer    Scorer
	geocoder  Geocoder
	txManager TxManager
	log       logger.Logger
	matchTTL  time.Duration
	now       func() time.Time
}

func New(
	shipments ShipmentRepository,
	locations LocationRepository,
	matches MatchRepository,
	scorer Scorer,
	geocoder Geocoder,
	txManager TxManager,
	log logger.Logger,
	config Config,
	opts ...Option,
) *Matching {
	m := &Matching{
		shipments: shipments,
		locations: locations,
		matches:   matches,
		scorer:    scorer,
		geocoder:  geocoder,
		txManager: txManager,
		log:       log,
		matchTTL:  config.MatchTTL,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindMatches scores every current carrier for the shipment, persists the top ranked
// matches and returns them. Persistence is best-effort per row.
func (m *Matching) FindMatches(ctx context.Context, shipmentID string) ([]entities.Match, error) {
	now := m.now()

	ranked, err := m.rank(ctx, shipmentID, now, "find")
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(m.matchTTL)
	for i := range ranked {
		ranked[i].ID = uuid.NewString()
		ranked[i].Status = entities.MatchPending
		ranked[i].ExpiresAt = &expiresAt
		ranked[i].CreatedAt = now
		ranked[i].UpdatedAt = now

		persisted, err := m.matches.Upsert(ctx, ranked[i])
		if err != nil {
			MatchPersistFailuresTotal.Inc()
			m.log.Error("failed to persist match",
				logger.NewField("shipment_id", shipmentID),
				logger.NewField("carrier_id", ranked[i].CarrierID),
				logger.NewField("error", err),
			)
			// no stored row carries this id
			ranked[i].ID = ""
			continue
		}
		// an existing row for the pair keeps its id and status
		ranked[i].ID = persisted.ID
		ranked[i].Status = persisted.Status
		ranked[i].CreatedAt = persisted.CreatedAt
		ranked[i].UpdatedAt = persisted.UpdatedAt
	}

	return ranked, nil
}

// PreviewMatches runs the same scoring and ranking as FindMatches without writing anything.
func (m *Matching) PreviewMatches(ctx context.Context, shipmentID string) ([]entities.Match, error) {
	now := m.now()

	ranked, err := m.rank(ctx, shipmentID, now, "preview")
	if err != nil {
		return nil, err
	}
	for i := range ranked {
		ranked[i].Status = entities.MatchPending
		ranked[i].CreatedAt = now
	}
	return ranked, nil
}

// GetMatches returns persisted matches of the shipment as stored.
func (m *Matching) GetMatches(ctx context.Context, shipmentID string) ([]entities.Match, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	if _, err := m.shipments.GetByID(ctx, shipmentID); err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	matches, err := m.matches.ListByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (m *Matching) MarkViewed(ctx context.Context, caller entities.Caller, matchID string) (*entities.Match, error) {
	return m.transition(ctx, caller, matchID, entities.MatchViewed)
}

func (m *Matching) MarkContacted(ctx context.Context, caller entities.Caller, matchID string) (*entities.Match, error) {
	return m.transition(ctx, caller, matchID, entities.MatchContacted)
}

// ExpireStaleMatches moves pending matches past their expiry to expired.
func (m *Matching) ExpireStaleMatches(ctx context.Context) (int64, error) {
	expired, err := m.matches.ExpireStale(ctx, m.now())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire stale matches timed out: %w", err)
		}
		return 0, fmt.Errorf("expire stale matches: %w", err)
	}
	MatchStatusTransitionsTotal.WithLabelValues(entities.MatchExpired.String()).Add(float64(expired))
	return expired, nil
}

// ExpireShipmentMatches expires all pending matches of a shipment that left the marketplace.
func (m *Matching) ExpireShipmentMatches(ctx context.Context, shipmentID string) (int64, error) {
	if !isValidID(shipmentID) {
		return 0, ErrInvalidShipmentID
	}

	expired, err := m.matches.ExpirePendingByShipmentID(ctx, shipmentID)
	if err != nil {
		return 0, fmt.Errorf("expire shipment matches: %w", err)
	}
	MatchStatusTransitionsTotal.WithLabelValues(entities.MatchExpired.String()).Add(float64(expired))
	return expired, nil
}

func (m *Matching) rank(ctx context.Context, shipmentID string, now time.Time, operation string) ([]entities.Match, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}
	start := time.Now()
	defer func() {
		MatchingRunDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	shipment, err := m.shipments.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if err := validateShipment(shipment); err != nil {
		return nil, err
	}

	origin, err := m.resolveOrigin(ctx, shipment)
	if err != nil {
		return nil, err
	}

	candidates, err := m.locations.ListCandidates(ctx, shipment.Equipment, now)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	MatchingCandidates.Observe(float64(len(candidates)))

	admitted := make([]entities.Match, 0, len(candidates))
	for _, candidate := range candidates {
		match := m.scorer.Score(*shipment, origin, candidate, now)
		if !m.scorer.Admit(match) {
			continue
		}
		admitted = append(admitted, match)
	}

	return m.scorer.Rank(admitted), nil
}

func (m *Matching) resolveOrigin(ctx context.Context, shipment *entities.Shipment) (entities.GeoPoint, error) {
	if shipment.Origin != nil {
		return *shipment.Origin, nil
	}

	address := shipment.OriginAddress()
	if address == "" {
		return entities.GeoPoint{}, fmt.Errorf("%w: empty origin address", ErrOriginUnresolved)
	}

	point, err := m.geocoder.Geocode(ctx, address)
	if err != nil {
		return entities.GeoPoint{}, fmt.Errorf("geocode origin %q: %w", address, err)
	}
	return point, nil
}

func (m *Matching) transition(ctx context.Context, caller entities.Caller, matchID string, target entities.MatchStatusType) (*entities.Match, error) {
	if !isValidID(matchID) {
		return nil, ErrInvalidMatchID
	}

	var (
		result  *entities.Match
		changed bool
	)
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		match, err := m.matches.GetByIDForUpdate(ctx, matchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		var shipment *entities.Shipment
		if caller.Role == entities.RoleShipper {
			shipment, err = m.shipments.GetByID(ctx, match.ShipmentID)
			if err != nil {
				return fmt.Errorf("get shipment of match: %w", err)
			}
		}
		if !canTransition(caller, match, shipment, target) {
			return ErrForbidden
		}

		if match.Status == target {
			result = match
			return nil
		}
		if !match.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, match.Status, target)
		}

		updated, err := m.matches.UpdateStatus(ctx, matchID, target)
		if err != nil {
			return fmt.Errorf("update match status: %w", err)
		}
		result = updated
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		MatchStatusTransitionsTotal.WithLabelValues(target.String()).Inc()
	}
	return result, nil
}
