package app

import (
	"context"
	"fmt"
	"time"

	"loadhive/internal/gateway/geocoding"
	"loadhive/internal/handlers/tasks/match_expiry"
	"loadhive/internal/pkg/config"
	"loadhive/internal/pkg/factory/match_score"
	"loadhive/internal/pkg/factory/shipment_handle"
	"loadhive/internal/repository/geocache"
	locationRepo "loadhive/internal/repository/location"
	matchRepo "loadhive/internal/repository/match"
	shipmentRepo "loadhive/internal/repository/shipment"
	"loadhive/internal/service/matching"
	shipmentService "loadhive/internal/service/shipment"
	"loadhive/pkg/background"
	"loadhive/pkg/logger"
	"loadhive/pkg/querier"
	"loadhive/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideMatchRepository(querier *querier.Querier) *matchRepo.Repository {
	return matchRepo.New(querier)
}

func provideGeocache(client *goredis.Client, cfg *config.Config) *geocache.Cache {
	return geocache.New(client, cfg.Geocoding.CacheTTL)
}

// provideGeocoder falls back to a disabled geocoder when no API key is configured,
// so shipments without stored coordinates fail with ErrOriginUnresolved.
func provideGeocoder(log logger.Logger, cache *geocache.Cache, cfg *config.Config) (matching.Geocoder, error) {
	if cfg.Geocoding.GoogleAPIKey == "" {
		log.Warn("GEOCODING_GOOGLE_API_KEY is not set, geocoding disabled")
		return geocoding.Disabled{}, nil
	}

	client, err := geocoding.NewMapsClient(cfg.Geocoding.GoogleAPIKey)
	if err != nil {
		return nil, err
	}
	return geocoding.New(client, cache, log), nil
}

func provideScorer(cfg *config.Config) (*match_score.Scorer, error) {
	policy := match_score.DefaultPolicy()
	policy.MinScore = cfg.Matching.MinScore
	policy.MaxResults = cfg.Matching.MaxResults

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("scoring policy: %w", err)
	}
	return match_score.New(policy), nil
}

func provideServiceMatching(
	shipments matching.ShipmentRepository,
	locations matching.LocationRepository,
	matches matching.MatchRepository,
	scorer matching.Scorer,
	geocoder matching.Geocoder,
	txManager matching.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *matching.Matching {
	return matching.New(
		shipments,
		locations,
		matches,
		scorer,
		geocoder,
		txManager,
		log,
		matching.Config{MatchTTL: cfg.Matching.MatchTTL},
	)
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.MatchExpiryInterval)
}

func provideMatchExpiryTask(
	log logger.Logger,
	service match_expiry.Service,
	interval ExpiryInterval,
) *match_expiry.MatchExpiry {
	return match_expiry.NewMatchExpiry(log, service, time.Duration(interval))
}

func provideTaskList(
	matchExpiryTask *match_expiry.MatchExpiry,
) []background.Task {
	return []background.Task{
		matchExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideStatusHandlerFactory(matchingService shipmentService.MatchingService) *shipment_handle.StatusHandlerFactory {
	return shipment_handle.NewStatusHandlerFactory(matchingService)
}

// provideShipmentService processes lifecycle events from Kafka.
func provideShipmentService(
	repository shipmentService.Repository,
	handlerFactory shipmentService.HandlerFactory,
	log logger.Logger,
) *shipmentService.Service {
	return shipmentService.New(repository, handlerFactory, log)
}
