//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"loadhive/internal/handlers/tasks/match_expiry"
	"loadhive/internal/pkg/config"
	"loadhive/internal/pkg/factory/match_score"
	"loadhive/internal/pkg/factory/shipment_handle"
	locationRepo "loadhive/internal/repository/location"
	matchRepo "loadhive/internal/repository/match"
	shipmentRepo "loadhive/internal/repository/shipment"
	"loadhive/internal/service/matching"
	shipmentService "loadhive/internal/service/shipment"
	"loadhive/pkg/logger"
	"loadhive/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

var matchingSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideShipmentRepository,
	provideLocationRepository,
	provideMatchRepository,
	provideGeocache,
	provideGeocoder,
	provideScorer,
	provideServiceMatching,

	wire.Bind(new(matching.ShipmentRepository), new(*shipmentRepo.Repository)),
	wire.Bind(new(matching.LocationRepository), new(*locationRepo.Repository)),
	wire.Bind(new(matching.MatchRepository), new(*matchRepo.Repository)),
	wire.Bind(new(matching.Scorer), new(*match_score.Scorer)),
	wire.Bind(new(matching.TxManager), new(*tx.Manager)),
)

// InitializeApplication builds the HTTP service graph (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		matchingSet,
		provideExpiryInterval,

		provideMatchExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceMatching), new(*matching.Matching)),
		wire.Bind(new(match_expiry.Service), new(*matching.Matching)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp builds the shipment lifecycle worker graph (cmd/worker-shipment-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		matchingSet,

		provideStatusHandlerFactory,
		provideShipmentService,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.MatchingService), new(*matching.Matching)),
		wire.Bind(new(shipmentService.HandlerFactory), new(*shipment_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
