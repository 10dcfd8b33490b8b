//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_daily_get_test
package stats_daily_get

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDaily(ctx context.Context, from, to time.Time) ([]entities.DailyStats, error)
}
