package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/repository"
	"github.com/tarekkanon/nightshift-logistics/internal/service/delivery"
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

// Create сохраняет доставку вместе с ее начальными действиями. Вызывается внутри транзакции.
func (r *Repository) Create(ctx context.Context, d entities.Delivery) error {
	query := `
		INSERT INTO deliveries (id, status, created_at, km_pickup, km_delivery)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query, d.ID, d.Status.String(), d.CreatedAt, d.KmPickup, d.KmDelivery)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return delivery.ErrDeliveryAlreadyExists
		}
		return fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	for _, action := range d.Actions {
		if err := r.AppendAction(ctx, d.ID, action); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT id, status, created_at, km_pickup, km_delivery, signature_data, signature_at
		FROM deliveries
		WHERE id = $1
	`, deliveryID)
	batch.Queue(`
		SELECT seq, type, occurred_at, note, km, comments
		FROM delivery_actions
		WHERE delivery_id = $1
		ORDER BY seq
	`, deliveryID)
	batch.Queue(`
		SELECT taken_at, data
		FROM delivery_photos
		WHERE delivery_id = $1
		ORDER BY id
	`, deliveryID)

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	var deliveryDB DeliveryDB
	err := results.QueryRow().Scan(
		&deliveryDB.ID,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.KmPickup,
		&deliveryDB.KmDelivery,
		&deliveryDB.SignatureData,
		&deliveryDB.SignatureAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	rows, err := results.Query()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get actions error: %w", err)
	}
	var actions []ActionDB
	if err := pgxscan.ScanAll(&actions, rows); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository scan actions error: %w", err)
	}

	rows, err = results.Query()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get photos error: %w", err)
	}
	var photos []PhotoDB
	if err := pgxscan.ScanAll(&photos, rows); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository scan photos error: %w", err)
	}

	return ToDomain(&deliveryDB, actions, photos), nil
}

// GetStateForUpdate блокирует строку доставки до конца транзакции.
func (r *Repository) GetStateForUpdate(ctx context.Context, deliveryID string) (*entities.DeliveryState, error) {
	query := `
		SELECT
			d.id,
			d.status,
			d.km_pickup,
			d.km_delivery,
			(SELECT COUNT(*) FROM delivery_photos p WHERE p.delivery_id = d.id) AS photos_count
		FROM deliveries d
		WHERE d.id = $1
		FOR UPDATE
	`

	var stateDB DeliveryStateDB
	err := pgxscan.Get(ctx, r.querier, &stateDB, query, deliveryID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get state error: %w", err)
	}

	return ToStateDomain(&stateDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliverySummary, error) {
	builder := qb.
		Select(
			"d.id",
			"d.status",
			"d.created_at",
			"d.km_pickup",
			"d.km_delivery",
			"(SELECT COUNT(*) FROM delivery_actions a WHERE a.delivery_id = d.id) AS actions_count",
			"(SELECT COUNT(*) FROM delivery_photos p WHERE p.delivery_id = d.id) AS photos_count",
			"COALESCE((SELECT MAX(a.occurred_at) FROM delivery_actions a WHERE a.delivery_id = d.id), d.created_at) AS last_action_at",
		).
		From("deliveries d")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"d.status": filter.Status.String()})
	}

	builder = builder.
		OrderBy("d.created_at DESC", "d.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	var summaries []DeliverySummaryDB
	if err := pgxscan.Select(ctx, r.querier, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToSummaryDomainList(summaries), nil
}

// AppendAction дописывает действие в конец журнала. Порядок seq держит блокировка строки доставки.
func (r *Repository) AppendAction(ctx context.Context, deliveryID string, action entities.Action) error {
	query := `
		INSERT INTO delivery_actions (delivery_id, seq, type, occurred_at, note, km, comments)
		SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, $4, $5, $6
		FROM delivery_actions
		WHERE delivery_id = $1
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		deliveryID,
		action.Type.String(),
		action.Timestamp,
		action.Note,
		action.Km,
		action.Comments,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository append action error: %w", err)
	}

	return nil
}

func (r *Repository) AppendPhoto(ctx context.Context, deliveryID string, photo entities.Photo) error {
	query := `
		INSERT INTO delivery_photos (delivery_id, taken_at, data)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, deliveryID, photo.Timestamp, photo.Data)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository append photo error: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) error {
	builder := qb.
		Update("deliveries")

	// опционнные поля
	if deliveryModify.Status != nil {
		builder = builder.Set("status", deliveryModify.Status.String())
	}
	if deliveryModify.KmPickup != nil {
		builder = builder.Set("km_pickup", *deliveryModify.KmPickup)
	}
	if deliveryModify.KmDelivery != nil {
		builder = builder.Set("km_delivery", *deliveryModify.KmDelivery)
	}
	if deliveryModify.Signature != nil {
		builder = builder.
			Set("signature_data", deliveryModify.Signature.Data).
			Set("signature_at", deliveryModify.Signature.Timestamp)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": deliveryModify.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}
