//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_cleanup_test
package outbox_cleanup

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type Service interface {
	PurgeSent(ctx context.Context, retention time.Duration) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
