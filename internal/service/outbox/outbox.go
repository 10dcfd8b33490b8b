package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

const maxErrorLength = 1024

type Outbox struct {
	log        serviceLogger
	repository Repository
	publisher  Publisher
	txManager  TxManager
	clock      Clock
	batchSize  uint64
}

func New(
	log serviceLogger,
	repository Repository,
	publisher Publisher,
	txManager TxManager,
	clock Clock,
	batchSize uint64,
) (*Outbox, error) {
	if batchSize == 0 {
		return nil, ErrInvalidBatchSize
	}

	return &Outbox{
		log:        log.With(logger.NewField("service", "outbox")),
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		clock:      clock,
		batchSize:  batchSize,
	}, nil
}

// RelayPending публикует одну пачку неотправленных событий. Строки заблокированы
// до конца транзакции, SKIP LOCKED не дает другим репликам взять их же.
// Ошибка публикации не прерывает пачку: событие остается в outbox до следующего прохода.
func (o *Outbox) RelayPending(ctx context.Context) (entities.RelayResult, error) {
	var result entities.RelayResult

	err := o.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		result = entities.RelayResult{}

		events, err := o.repository.FetchPendingForUpdate(ctx, o.batchSize)
		if err != nil {
			return fmt.Errorf("fetch pending events: %w", err)
		}

		sent := make([]string, 0, len(events))
		for _, event := range events {
			if err := ctx.Err(); err != nil {
				break
			}

			if err := o.publisher.Publish(ctx, event); err != nil {
				o.log.Warn("publish outbox event",
					logger.NewField("event_id", event.ID),
					logger.NewField("delivery_id", event.DeliveryID),
					logger.NewField("attempt", event.Attempts+1),
					logger.NewField("error", err),
				)
				if err := o.repository.MarkFailed(ctx, event.ID, truncate(err.Error())); err != nil {
					return fmt.Errorf("mark event failed: %w", err)
				}
				result.Failed++
				continue
			}
			sent = append(sent, event.ID)
		}

		if len(sent) > 0 {
			if err := o.repository.MarkSent(ctx, sent, o.clock.Now()); err != nil {
				return fmt.Errorf("mark events sent: %w", err)
			}
		}
		result.Sent = len(sent)
		return nil
	})
	if err != nil {
		return entities.RelayResult{}, err
	}

	OutboxRelayedTotal.WithLabelValues("sent").Add(float64(result.Sent))
	OutboxRelayedTotal.WithLabelValues("failed").Add(float64(result.Failed))

	return result, nil
}

func (o *Outbox) PendingCount(ctx context.Context) (int64, error) {
	count, err := o.repository.PendingCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("pending outbox events: %w", err)
	}

	OutboxPendingEvents.Set(float64(count))
	return count, nil
}

// PurgeSent удаляет события, опубликованные раньше чем retention назад.
func (o *Outbox) PurgeSent(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	deleted, err := o.repository.DeleteSentBefore(ctx, o.clock.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("purge sent outbox events: %w", err)
	}

	OutboxPurgedTotal.Add(float64(deleted))
	return deleted, nil
}

func truncate(reason string) string {
	if len(reason) <= maxErrorLength {
		return reason
	}
	return reason[:maxErrorLength]
}
