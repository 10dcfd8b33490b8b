//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
)

type Repository interface {
	// MarkProcessed false, если событие уже учитывалось.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	ApplyDelta(ctx context.Context, delta entities.DailyStatsDelta) error
	GetDaily(ctx context.Context, from, to time.Time) ([]entities.DailyStats, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
