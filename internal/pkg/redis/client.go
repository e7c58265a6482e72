package redis

import (
	"context"
	"fmt"
	"time"

	"loadhive/internal/pkg/config"
	"loadhive/pkg/logger"
	retrierconfig "loadhive/pkg/retrier"
	"loadhive/pkg/retrier/backoff_adapter"

	goredis "github.com/redis/go-redis/v9"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = 1 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient connects to Redis and waits until it answers PING.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("component", "redis"),
		logger.NewField("addr", cfg.Addr),
	)

	err := ping(ctx, redisLog, client)
	if err != nil {
		closeErr := client.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *goredis.Client) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Redis connection")

		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Redis connection established")
	return nil
}
