//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_pending_get_test
package sync_pending_get

import (
	"context"

	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PendingCount(ctx context.Context) (int64, error)
}
