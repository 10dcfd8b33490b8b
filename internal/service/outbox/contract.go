//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type Repository interface {
	FetchPendingForUpdate(ctx context.Context, limit uint64) ([]entities.OutboxEvent, error)
	MarkSent(ctx context.Context, eventIDs []string, sentAt time.Time) error
	MarkFailed(ctx context.Context, eventID string, reason string) error
	PendingCount(ctx context.Context) (int64, error)
	DeleteSentBefore(ctx context.Context, before time.Time) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, event entities.OutboxEvent) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
