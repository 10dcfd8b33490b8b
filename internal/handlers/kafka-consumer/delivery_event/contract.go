//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_event_test
package delivery_event

import (
	"context"

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
	ProjectEvent(ctx context.Context, event entities.DeliveryEvent) (bool, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
