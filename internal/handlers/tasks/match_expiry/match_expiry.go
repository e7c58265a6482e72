package match_expiry

import (
	"context"
	"time"

	"loadhive/pkg/logger"
)

type MatchExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMatchExpiry(log logger.Logger, service Service, interval time.Duration) *MatchExpiry {
	return &MatchExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MatchExpiry) TTL() time.Duration {
	return m.interval
}

func (m *MatchExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	rowsAffected, err := m.service.ExpireStaleMatches(ctxWithTimeout)

	if rowsAffected > 0 {
		m.log.With(
			logger.NewField("expired_matches", rowsAffected),
		).Info("match expiry")
	}

	return err
}

func (m *MatchExpiry) Info() string {
	return "match expiry"
}
