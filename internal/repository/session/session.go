package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/service/auth"
)

const keyPrefix = "driver-session:"

type sessionRecord struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// Repository сессии водителя в Redis, истекают по TTL ключа.
type Repository struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *Repository {
	return &Repository{
		client: client,
	}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

func (r *Repository) Create(ctx context.Context, session entities.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sessionRecord{ExpiresAt: session.ExpiresAt})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// SETNX: UUID v7 не должен совпасть, но чужую сессию не перезаписываем
	ok, err := r.client.SetNX(ctx, key(session.ID), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("unexpected session repository create error: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, sessionID string) (*entities.Session, error) {
	payload, err := r.client.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository get error: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &entities.Session{
		ID:        sessionID,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}
	return nil
}
