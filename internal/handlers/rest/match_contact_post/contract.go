//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_contact_post_test
package match_contact_post

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
	MarkContacted(ctx context.Context, caller entities.Caller, matchID string) (*entities.Match, error)
}
