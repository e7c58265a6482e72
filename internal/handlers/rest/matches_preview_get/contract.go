//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matches_preview_get_test
package matches_preview_get

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
	PreviewMatches(ctx context.Context, shipmentID string) ([]entities.Match, error)
}
