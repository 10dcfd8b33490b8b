//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_post_test
package deliveries_post

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
	CreateNewDelivery(ctx context.Context) (*entities.Delivery, error)
}
