package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
)

type Limits struct {
	PhotoMaxBytes       int
	PhotoMaxPerDelivery int
	SignatureMaxBytes   int
}

type Delivery struct {
	repository Repository
	outbox     OutboxRepository
	txManager  TxManager
	ids        IDGenerator
	clock      Clock
	limits     Limits
}

func New(
	repository Repository,
	outbox OutboxRepository,
	txManager TxManager,
	ids IDGenerator,
	clock Clock,
	limits Limits,
) *Delivery {
	return &Delivery{
		repository: repository,
		outbox:     outbox,
		txManager:  txManager,
		ids:        ids,
		clock:      clock,
		limits:     limits,
	}
}

func (d *Delivery) CreateNewDelivery(ctx context.Context) (*entities.Delivery, error) {
	deliveryID, err := d.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("delivery id: %w", err)
	}
	return d.create(ctx, deliveryID, d.clock.Now())
}

// ImportDelivery создает доставку с id и временем, выданными офлайн клиентом.
func (d *Delivery) ImportDelivery(ctx context.Context, deliveryID string, createdAt time.Time) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if createdAt.IsZero() {
		createdAt = d.clock.Now()
	}
	return d.create(ctx, deliveryID, createdAt.UTC())
}

func (d *Delivery) create(ctx context.Context, deliveryID string, createdAt time.Time) (*entities.Delivery, error) {
	var none entities.DeliveryStatus
	status, err := none.Next(entities.ActionCreated)
	if err != nil {
		return nil, err
	}

	delivery := entities.Delivery{
		ID:        deliveryID,
		Status:    status,
		CreatedAt: createdAt,
		Actions: []entities.Action{{
			Type:      entities.ActionCreated,
			Timestamp: createdAt,
			Note:      entities.ActionCreated.DefaultNote(),
		}},
	}

	event, err := d.newOutboxEvent(&delivery, delivery.Actions[0])
	if err != nil {
		return nil, err
	}

	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		if err := d.repository.Create(ctx, delivery); err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		if err := d.outbox.Add(ctx, *event); err != nil {
			return fmt.Errorf("add outbox event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ActionsLoggedTotal.WithLabelValues(entities.ActionCreated.String()).Inc()
	return &delivery, nil
}

// LogAction добавляет ровно одно действие и применяет переход статуса в одной транзакции.
func (d *Delivery) LogAction(ctx context.Context, cmd entities.ActionCommand) (*entities.Delivery, error) {
	if !isValidDeliveryID(cmd.DeliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !cmd.Type.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidActionType, cmd.Type)
	}
	if err := d.validatePayload(cmd); err != nil {
		return nil, err
	}

	timestamp := d.clock.Now()
	if cmd.Timestamp != nil && !cmd.Timestamp.IsZero() {
		timestamp = cmd.Timestamp.UTC()
	}
	note, comments := noteFor(cmd.Type, cmd.Comments)
	action := entities.Action{
		Type:      cmd.Type,
		Timestamp: timestamp,
		Note:      note,
		Km:        cmd.Km,
		Comments:  comments,
	}

	var result *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		state, err := d.repository.GetStateForUpdate(ctx, cmd.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		modify, err := d.plan(state, cmd)
		if err != nil {
			return err
		}

		// подтверждение проверяется после перехода: превью показываем только для допустимого действия
		if cmd.Type.RequiresConfirmation() && !cmd.Confirmed {
			return ErrConfirmationRequired
		}

		if err := d.repository.AppendAction(ctx, cmd.DeliveryID, action); err != nil {
			return fmt.Errorf("append action: %w", err)
		}

		if cmd.Photo != nil {
			photo := entities.Photo{Timestamp: timestamp, Data: *cmd.Photo}
			if err := d.repository.AppendPhoto(ctx, cmd.DeliveryID, photo); err != nil {
				return fmt.Errorf("append photo: %w", err)
			}
		}

		if cmd.Signature != nil {
			modify.Signature = &entities.Signature{Timestamp: timestamp, Data: *cmd.Signature}
		}

		if modify.Status != nil || modify.KmPickup != nil || modify.KmDelivery != nil || modify.Signature != nil {
			if err := d.repository.Update(ctx, *modify); err != nil {
				return fmt.Errorf("update delivery: %w", err)
			}
		}

		result, err = d.repository.GetByID(ctx, cmd.DeliveryID)
		if err != nil {
			return fmt.Errorf("reload delivery: %w", err)
		}

		event, err := d.newOutboxEvent(result, action)
		if err != nil {
			return err
		}
		if err := d.outbox.Add(ctx, *event); err != nil {
			return fmt.Errorf("add outbox event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ActionsLoggedTotal.WithLabelValues(cmd.Type.String()).Inc()
	return result, nil
}

func (d *Delivery) CapturePhoto(ctx context.Context, deliveryID, data string, comments *string) (*entities.Delivery, error) {
	return d.LogAction(ctx, entities.ActionCommand{
		DeliveryID: deliveryID,
		Type:       entities.ActionPhotoCaptured,
		Comments:   comments,
		Photo:      &data,
	})
}

// CaptureSignature перезаписывает предыдущую подпись.
func (d *Delivery) CaptureSignature(ctx context.Context, deliveryID, data string) (*entities.Delivery, error) {
	return d.LogAction(ctx, entities.ActionCommand{
		DeliveryID: deliveryID,
		Type:       entities.ActionSignatureCaptured,
		Signature:  &data,
	})
}

func (d *Delivery) GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

func (d *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliverySummary, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	deliveries, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// validatePayload проверки, не требующие состояния доставки.
func (d *Delivery) validatePayload(cmd entities.ActionCommand) error {
	if err := validateKm(cmd.Km); err != nil {
		return err
	}

	if cmd.Type == entities.ActionPhotoCaptured && cmd.Photo == nil {
		return fmt.Errorf("%w: photo is required", ErrInvalidImage)
	}
	if cmd.Photo != nil {
		if err := validatePhoto(*cmd.Photo, d.limits.PhotoMaxBytes); err != nil {
			return err
		}
	}

	if cmd.Type == entities.ActionSignatureCaptured && cmd.Signature == nil {
		return fmt.Errorf("%w: signature is required", ErrInvalidSignature)
	}
	if cmd.Signature != nil {
		if err := validateSignature(*cmd.Signature, d.limits.SignatureMaxBytes); err != nil {
			return err
		}
	}
	return nil
}

// plan вычисляет изменения строки доставки для действия над state.
func (d *Delivery) plan(state *entities.DeliveryState, cmd entities.ActionCommand) (*entities.DeliveryModify, error) {
	next, err := state.Status.Next(cmd.Type)
	if err != nil {
		return nil, err
	}

	modify := &entities.DeliveryModify{ID: state.ID}
	if next != state.Status {
		modify.Status = &next
	}

	if cmd.Km != nil {
		switch cmd.Type {
		case entities.ActionPickupConfirmed:
			// Next пропускает pickup только из created, поэтому kmPickup еще пуст
			modify.KmPickup = cmd.Km
		case entities.ActionDeliveryCompleted:
			if state.KmPickup != nil && *cmd.Km < *state.KmPickup {
				return nil, fmt.Errorf("%w: delivery km %v is less than pickup km %v",
					ErrInvalidOdometer, *cmd.Km, *state.KmPickup)
			}
			modify.KmDelivery = cmd.Km
		}
	}

	if cmd.Photo != nil && d.limits.PhotoMaxPerDelivery > 0 && state.PhotosCount >= d.limits.PhotoMaxPerDelivery {
		return nil, fmt.Errorf("%w: %d photos", ErrPhotoLimitReached, state.PhotosCount)
	}

	return modify, nil
}

func (d *Delivery) newOutboxEvent(delivery *entities.Delivery, action entities.Action) (*entities.OutboxEvent, error) {
	eventID, err := d.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("event id: %w", err)
	}

	payload, err := json.Marshal(entities.DeliveryEvent{
		EventID:    eventID,
		DeliveryID: delivery.ID,
		Type:       action.Type,
		Status:     delivery.Status,
		Timestamp:  action.Timestamp,
		Km:         action.Km,
		KmPickup:   delivery.KmPickup,
		KmDelivery: delivery.KmDelivery,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal delivery event: %w", err)
	}

	return &entities.OutboxEvent{
		ID:         eventID,
		DeliveryID: delivery.ID,
		Type:       action.Type,
		Payload:    payload,
		CreatedAt:  d.clock.Now(),
	}, nil
}
