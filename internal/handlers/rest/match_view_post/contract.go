//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_view_post_test
package match_view_post

import (
	"context"

	"loadhive/internal/entities"
	"loadhive/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkViewed(ctx context.Context, caller entities.Caller, matchID string) (*entities.Match, error)
}
