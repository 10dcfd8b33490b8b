//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_logout_post_test
package auth_logout_post

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
	Logout(ctx context.Context, token string) error
}
