package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
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

func (r *Repository) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	query := `
		INSERT INTO processed_events (event_id)
		VALUES ($1)
		ON CONFLICT (event_id) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, eventID)
	if err != nil {
		return false, fmt.Errorf("unexpected stats repository mark processed error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) ApplyDelta(ctx context.Context, delta entities.DailyStatsDelta) error {
	query := `
		INSERT INTO delivery_stats AS s (day, created, completed, issues, fuel_stops, total_km)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (day) DO UPDATE SET
			created    = s.created + EXCLUDED.created,
			completed  = s.completed + EXCLUDED.completed,
			issues     = s.issues + EXCLUDED.issues,
			fuel_stops = s.fuel_stops + EXCLUDED.fuel_stops,
			total_km   = s.total_km + EXCLUDED.total_km
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		delta.Day,
		delta.Created,
		delta.Completed,
		delta.Issues,
		delta.FuelStops,
		delta.TotalKm,
	)
	if err != nil {
		return fmt.Errorf("unexpected stats repository apply delta error: %w", err)
	}

	return nil
}

func (r *Repository) GetDaily(ctx context.Context, from, to time.Time) ([]entities.DailyStats, error) {
	query := `
		SELECT day, created, completed, issues, fuel_stops, total_km
		FROM delivery_stats
		WHERE day BETWEEN $1 AND $2
		ORDER BY day
	`

	var rows []DailyStatsDB
	if err := pgxscan.Select(ctx, r.querier, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("unexpected stats repository get daily error: %w", err)
	}

	stats := make([]entities.DailyStats, 0, len(rows))
	for _, s := range rows {
		stats = append(stats, entities.DailyStats{
			Day:       s.Day.UTC(),
			Created:   s.Created,
			Completed: s.Completed,
			Issues:    s.Issues,
			FuelStops: s.FuelStops,
			TotalKm:   s.TotalKm,
		})
	}
	return stats, nil
}
