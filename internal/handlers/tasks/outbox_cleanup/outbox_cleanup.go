package outbox_cleanup

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

// OutboxCleanup удаляет из outbox события, опубликованные раньше retention.
type OutboxCleanup struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	retention time.Duration
}

func NewOutboxCleanup(log taskLogger, service Service, interval, retention time.Duration) *OutboxCleanup {
	return &OutboxCleanup{
		log:       log,
		service:   service,
		interval:  interval,
		retention: retention,
	}
}

func (o *OutboxCleanup) TTL() time.Duration {
	return o.interval
}

func (o *OutboxCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	deleted, err := o.service.PurgeSent(ctxWithTimeout, o.retention)

	if deleted > 0 {
		o.log.With(
			logger.NewField("purged_events", deleted),
		).Info("outbox cleanup")
	}

	return err
}

func (o *OutboxCleanup) Info() string {
	return "outbox cleanup"
}
