package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/service/delivery"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
	"gopkg.in/go-playground/validator.v9"
)

const MaxBatchSize = 100

type Sync struct {
	log        serviceLogger
	deliveries DeliveryService
	receipts   ReceiptRepository
	txManager  TxManager
	validator  *validator.Validate
}

func New(log serviceLogger, deliveries DeliveryService, receipts ReceiptRepository, txManager TxManager) *Sync {
	return &Sync{
		log:        log.With(logger.NewField("service", "sync")),
		deliveries: deliveries,
		receipts:   receipts,
		txManager:  txManager,
		validator:  validator.New(),
	}
}

// ApplyBatch применяет офлайн очередь водителя по порядку. Каждый конверт
// применяется в своей транзакции вместе с квитанцией, поэтому повторная
// выгрузка той же очереди ничего не меняет. Отклоненный конверт не мешает следующим.
func (s *Sync) ApplyBatch(ctx context.Context, envelopes []entities.SyncEnvelope) ([]entities.SyncResult, error) {
	if len(envelopes) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(envelopes) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d envelopes, max %d", ErrBatchTooLarge, len(envelopes), MaxBatchSize)
	}

	results := make([]entities.SyncResult, 0, len(envelopes))
	for _, envelope := range envelopes {
		result, err := s.apply(ctx, envelope)
		if err != nil {
			return nil, fmt.Errorf("envelope %s: %w", envelope.ID, err)
		}
		EnvelopesTotal.WithLabelValues(string(result.Status)).Inc()
		results = append(results, result)
	}

	return results, nil
}

// apply возвращает ошибку только для инфраструктурных сбоев, доменные ошибки попадают в результат.
func (s *Sync) apply(ctx context.Context, envelope entities.SyncEnvelope) (entities.SyncResult, error) {
	result := entities.SyncResult{EnvelopeID: envelope.ID}

	deliveryID, applyFn, err := s.prepare(envelope)
	if err != nil {
		return s.reject(result, err), nil
	}
	result.DeliveryID = deliveryID

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		added, err := s.receipts.Add(ctx, envelope.ID, deliveryID)
		if err != nil {
			return fmt.Errorf("add sync receipt: %w", err)
		}
		if !added {
			result.Status = entities.SyncDuplicate
			return nil
		}

		if err := applyFn(ctx); err != nil {
			return err
		}
		result.Status = entities.SyncApplied
		return nil
	})
	if err != nil {
		if isRejection(err) {
			return s.reject(result, err), nil
		}
		return entities.SyncResult{}, err
	}

	return result, nil
}

func (s *Sync) prepare(envelope entities.SyncEnvelope) (string, func(ctx context.Context) error, error) {
	if err := validateEnvelope(s.validator, envelope); err != nil {
		return "", nil, err
	}

	switch envelope.Type {
	case entities.EnvelopeDeliveryCreated:
		var data deliveryCreatedData
		if err := decodeData(s.validator, envelope.Data, &data); err != nil {
			return "", nil, err
		}
		return data.DeliveryID, func(ctx context.Context) error {
			_, err := s.deliveries.ImportDelivery(ctx, data.DeliveryID, envelope.Timestamp)
			return err
		}, nil

	case entities.EnvelopeActionLogged:
		var data actionLoggedData
		if err := decodeData(s.validator, envelope.Data, &data); err != nil {
			return "", nil, err
		}
		timestamp := envelope.Timestamp
		cmd := entities.ActionCommand{
			DeliveryID: data.DeliveryID,
			Type:       entities.ActionType(data.Type),
			Comments:   data.Comments,
			Km:         data.Km,
			Photo:      data.Photo,
			Signature:  data.Signature,
			// водитель подтвердил действие на устройстве, пока был офлайн
			Confirmed: true,
			Timestamp: &timestamp,
		}
		return data.DeliveryID, func(ctx context.Context) error {
			_, err := s.deliveries.LogAction(ctx, cmd)
			return err
		}, nil

	default:
		return "", nil, fmt.Errorf("%w: unknown type %q", ErrInvalidEnvelope, envelope.Type)
	}
}

func (s *Sync) reject(result entities.SyncResult, err error) entities.SyncResult {
	s.log.Warn("sync envelope rejected",
		logger.NewField("envelope_id", result.EnvelopeID),
		logger.NewField("delivery_id", result.DeliveryID),
		logger.NewField("error", err),
	)
	result.Status = entities.SyncRejected
	result.Error = err.Error()
	return result
}

func isRejection(err error) bool {
	rejections := []error{
		ErrInvalidEnvelope,
		delivery.ErrInvalidDeliveryID,
		delivery.ErrDeliveryNotFound,
		delivery.ErrDeliveryAlreadyExists,
		delivery.ErrInvalidActionType,
		delivery.ErrInvalidTransition,
		delivery.ErrDeliveryCompleted,
		delivery.ErrConfirmationRequired,
		delivery.ErrInvalidOdometer,
		delivery.ErrInvalidImage,
		delivery.ErrImageTooLarge,
		delivery.ErrPhotoLimitReached,
		delivery.ErrInvalidSignature,
		delivery.ErrSignatureTooLarge,
	}
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
