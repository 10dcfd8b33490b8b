package delivery_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	statsservice "github.com/tarekkanon/nightshift-logistics/internal/service/stats"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type Handler struct {
	statsService             Service
	retrier                  retrier
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, statsService Service, retrier retrier, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		statsService:             statsService,
		retrier:                  retrier,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("delivery.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true - выйти из ConsumeClaim без коммита, сообщение придет снова.
// Битые сообщения коммитятся, чтобы не блокировать партицию.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.DeliveryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("type", event.Type.String()),
		logger.NewField("offset", message.Offset),
	)

	var applied bool
	err = h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		applied, err = h.statsService.ProjectEvent(ctx, event)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, statsservice.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.events handler skipped invalid event")
			sess.MarkMessage(message, "")
			return false
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.events handler context cancelled, message will be reprocessed")
			return true
		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.events handler failed to project event, message will be reprocessed")
			return true
		}
	}

	if applied {
		msgLog.Info("delivery.events: projected")
	} else {
		msgLog.Info("delivery.events: duplicate skipped")
	}
	sess.MarkMessage(message, "")
	return false
}

// ShouldRetry ретраятся только ошибки хранилища: невалидное событие не исправится повтором.
func ShouldRetry(err error) bool {
	return !errors.Is(err, statsservice.ErrInvalidEvent) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
