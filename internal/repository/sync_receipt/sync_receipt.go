package sync_receipt

import (
	"context"
	"fmt"

	"github.com/tarekkanon/nightshift-logistics/internal/repository"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Add ON CONFLICT вместо проверки уникальности: ошибка 23505 оборвала бы всю транзакцию.
func (r *Repository) Add(ctx context.Context, envelopeID, deliveryID string) (bool, error) {
	query := `
		INSERT INTO sync_receipts (envelope_id, delivery_id)
		VALUES ($1, $2)
		ON CONFLICT (envelope_id) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, envelopeID, deliveryID)
	if err != nil {
		return false, fmt.Errorf("unexpected sync receipt repository add error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}
