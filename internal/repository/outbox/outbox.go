package outbox

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Add(ctx context.Context, event entities.OutboxEvent) error {
	query := `
		INSERT INTO outbox_events (id, delivery_id, type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query, event.ID, event.DeliveryID, event.Type.String(), event.Payload, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}

	return nil
}

// FetchPendingForUpdate неотправленные события в порядке записи, строки, занятые другой репликой, пропускаются.
func (r *Repository) FetchPendingForUpdate(ctx context.Context, limit uint64) ([]entities.OutboxEvent, error) {
	query, args, err := qb.
		Select("id", "delivery_id", "type", "payload", "created_at", "sent_at", "attempts", "last_error").
		From("outbox_events").
		Where(sq.Eq{"sent_at": nil}).
		OrderBy("created_at", "id").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch pending error: %w", err)
	}

	var events []OutboxEventDB
	if err := pgxscan.Select(ctx, r.querier, &events, query, args...); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch pending error: %w", err)
	}

	return ToDomainList(events), nil
}

func (r *Repository) MarkSent(ctx context.Context, eventIDs []string, sentAt time.Time) error {
	if len(eventIDs) == 0 {
		return nil
	}

	query, args, err := qb.
		Update("outbox_events").
		Set("sent_at", sentAt).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", nil).
		Where(sq.Eq{"id": eventIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark sent error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected outbox repository mark sent error: %w", err)
	}

	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, eventID string, reason string) error {
	query := `
		UPDATE outbox_events
		SET attempts = attempts + 1,
		    last_error = $2
		WHERE id = $1
	`

	if _, err := r.querier.Exec(ctx, query, eventID, reason); err != nil {
		return fmt.Errorf("unexpected outbox repository mark failed error: %w", err)
	}

	return nil
}

func (r *Repository) PendingCount(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM outbox_events
		WHERE sent_at IS NULL
	`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected outbox repository pending count error: %w", err)
	}

	return count, nil
}

// DeleteSentBefore удаляет опубликованные события старше before. Неотправленные не трогает.
func (r *Repository) DeleteSentBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := qb.
		Delete("outbox_events").
		Where(sq.NotEq{"sent_at": nil}).
		Where(sq.Lt{"sent_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository delete sent error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository delete sent error: %w", err)
	}

	return tag.RowsAffected(), nil
}
