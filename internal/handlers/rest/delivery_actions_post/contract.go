//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_actions_post_test
package delivery_actions_post

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
	LogAction(ctx context.Context, cmd entities.ActionCommand) (*entities.Delivery, error)
}
