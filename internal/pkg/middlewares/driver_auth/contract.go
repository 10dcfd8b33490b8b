//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_auth_test
package driver_auth

import (
	"context"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Session, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
