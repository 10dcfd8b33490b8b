//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type SessionRepository interface {
	Create(ctx context.Context, session entities.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*entities.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type TokenManager interface {
	Issue(sessionID string, expiresAt time.Time) (string, error)
	Parse(raw string) (string, error)
}

type IDGenerator interface {
	NewID() (string, error)
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
