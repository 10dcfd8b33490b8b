package outbox_relay

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

// OutboxRelay периодически переносит события доставок из outbox в Kafka.
type OutboxRelay struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log taskLogger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	result, err := o.service.RelayPending(ctxWithTimeout)
	if err != nil {
		return err
	}

	if result.Sent > 0 || result.Failed > 0 {
		o.log.With(
			logger.NewField("sent", result.Sent),
			logger.NewField("failed", result.Failed),
		).Info("outbox relay")
	}

	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
