//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ai_matching_post_test
package ai_matching_post

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
	FindMatches(ctx context.Context, shipmentID string) ([]entities.Match, error)
	GetMatches(ctx context.Context, shipmentID string) ([]entities.Match, error)
	PreviewMatches(ctx context.Context, shipmentID string) ([]entities.Match, error)
}
