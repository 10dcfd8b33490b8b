package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
)

// maxRangeDays ограничивает выборку GetDaily примерно годом.
const maxRangeDays = 366

type Stats struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Stats {
	return &Stats{
		repository: repository,
		txManager:  txManager,
	}
}

// ProjectEvent учитывает событие в дневной статистике ровно один раз.
// Возвращает false, если событие с таким id уже было учтено.
func (s *Stats) ProjectEvent(ctx context.Context, event entities.DeliveryEvent) (bool, error) {
	if event.EventID == "" || event.DeliveryID == "" {
		return false, fmt.Errorf("%w: missing event or delivery id", ErrInvalidEvent)
	}
	if !event.Type.IsValid() {
		return false, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, event.Type)
	}
	if event.Timestamp.IsZero() {
		return false, fmt.Errorf("%w: missing timestamp", ErrInvalidEvent)
	}

	delta := deltaFor(event)

	var applied bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		first, err := s.repository.MarkProcessed(ctx, event.EventID)
		if err != nil {
			return fmt.Errorf("mark event processed: %w", err)
		}
		applied = first
		if !first || delta.IsZero() {
			return nil
		}

		if err := s.repository.ApplyDelta(ctx, delta); err != nil {
			return fmt.Errorf("apply stats delta: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if applied {
		EventsProjectedTotal.WithLabelValues(event.Type.String()).Inc()
	} else {
		EventsDuplicateTotal.Inc()
	}
	return applied, nil
}

// GetDaily дни в диапазоне [from, to] включительно, UTC.
func (s *Stats) GetDaily(ctx context.Context, from, to time.Time) ([]entities.DailyStats, error) {
	from, to = day(from), day(to)
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidRange
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: more than %d days", ErrInvalidRange, maxRangeDays)
	}

	stats, err := s.repository.GetDaily(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get daily stats: %w", err)
	}
	return stats, nil
}

func deltaFor(event entities.DeliveryEvent) entities.DailyStatsDelta {
	delta := entities.DailyStatsDelta{Day: day(event.Timestamp)}

	switch event.Type {
	case entities.ActionCreated:
		delta.Created = 1
	case entities.ActionDeliveryCompleted:
		delta.Completed = 1
		if distance, ok := event.Distance(); ok && distance > 0 {
			delta.TotalKm = distance
		}
	case entities.ActionIssue:
		delta.Issues = 1
	case entities.ActionFuelStop:
		delta.FuelStops = 1
	}

	return delta
}

func day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
