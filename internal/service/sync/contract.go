//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_test
package sync

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type DeliveryService interface {
	ImportDelivery(ctx context.Context, deliveryID string, createdAt time.Time) (*entities.Delivery, error)
	LogAction(ctx context.Context, cmd entities.ActionCommand) (*entities.Delivery, error)
}

type ReceiptRepository interface {
	// Add false, если конверт с таким id уже применялся.
	Add(ctx context.Context, envelopeID, deliveryID string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
