package delivery_events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	retrierconfig "github.com/tarekkanon/nightshift-logistics/pkg/retrier"
	"github.com/tarekkanon/nightshift-logistics/pkg/retrier/backoff_adapter"
)

const (
	headerEventID   = "event-id"
	headerEventType = "event-type"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrEmptyPayload = errors.New("outbox event has empty payload")

// Publisher публикует события outbox в топик событий доставки, ключ сообщения id доставки.
type Publisher struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Publisher {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Publisher{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OutboxEvent) error {
	if len(event.Payload) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPayload, event.ID)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.DeliveryID),
		Value: sarama.ByteEncoder(event.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventID), Value: []byte(event.ID)},
			{Key: []byte(headerEventType), Value: []byte(event.Type.String())},
		},
		Timestamp: event.CreatedAt,
	}

	err := p.executeWithMetrics(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway delivery events, publish %s: %w", event.ID, err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend),
		errors.Is(err, sarama.ErrBrokerNotAvailable):
		return true
	default:
		return false
	}
}

func (p *Publisher) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := publishResult(err)
	GatewayPublishDuration.WithLabelValues(p.topic, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(p.topic, result).Inc()
	}

	return err
}

func publishResult(err error) string {
	if err == nil {
		return "ok"
	}

	var kErr sarama.KError
	if errors.As(err, &kErr) {
		return kErr.Error()
	}
	return "error"
}
