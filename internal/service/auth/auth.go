package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Auth общий PIN водителя в обмен на отзываемую сессию. Это UI-гейт,
// а не система идентификации: блокировки после неудачных попыток нет.
type Auth struct {
	log        serviceLogger
	pinHash    []byte
	sessionTTL time.Duration
	sessions   SessionRepository
	tokens     TokenManager
	ids        IDGenerator
	clock      Clock
}

func New(
	log serviceLogger,
	pinHash []byte,
	sessionTTL time.Duration,
	sessions SessionRepository,
	tokens TokenManager,
	ids IDGenerator,
	clock Clock,
) *Auth {
	return &Auth{
		log:        log.With(logger.NewField("service", "auth")),
		pinHash:    pinHash,
		sessionTTL: sessionTTL,
		sessions:   sessions,
		tokens:     tokens,
		ids:        ids,
		clock:      clock,
	}
}

// HashPIN хеш для сравнения, в памяти хранится только он.
func HashPIN(pin string, cost int) ([]byte, error) {
	if !isValidPINFormat(pin) {
		return nil, ErrInvalidPINFormat
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	return hash, nil
}

func (a *Auth) Login(ctx context.Context, pin string) (*entities.Session, error) {
	if !isValidPINFormat(pin) {
		return nil, ErrInvalidPINFormat
	}

	err := bcrypt.CompareHashAndPassword(a.pinHash, []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			a.log.Warn("invalid driver pin")
			return nil, ErrInvalidPIN
		}
		return nil, fmt.Errorf("compare pin: %w", err)
	}

	sessionID, err := a.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}

	expiresAt := a.clock.Now().Add(a.sessionTTL)
	token, err := a.tokens.Issue(sessionID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	session := entities.Session{
		ID:        sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := a.sessions.Create(ctx, session, a.sessionTTL); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	a.log.With(logger.NewField("session_id", sessionID)).Info("driver logged in")
	return &session, nil
}

// Logout отзывает сессию; повторный вызов с тем же токеном уже не проходит Authenticate.
func (a *Auth) Logout(ctx context.Context, token string) error {
	session, err := a.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	if err := a.sessions.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	a.log.With(logger.NewField("session_id", session.ID)).Info("driver logged out")
	return nil
}

func (a *Auth) Authenticate(ctx context.Context, token string) (*entities.Session, error) {
	sessionID, err := a.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	session.Token = token
	return session, nil
}
