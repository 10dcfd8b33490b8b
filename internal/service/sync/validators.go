package sync

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"gopkg.in/go-playground/validator.v9"
)

type envelopeInput struct {
	ID        string    `validate:"required,uuid"`
	Type      string    `validate:"required,oneof=delivery_created action_logged"`
	Timestamp time.Time `validate:"required"`
}

type deliveryCreatedData struct {
	DeliveryID string `json:"delivery_id" validate:"required,uuid"`
}

type actionLoggedData struct {
	DeliveryID string   `json:"delivery_id" validate:"required,uuid"`
	Type       string   `json:"type" validate:"required"`
	Comments   *string  `json:"comments"`
	Km         *float64 `json:"km" validate:"omitempty,min=0"`
	Photo      *string  `json:"photo"`
	Signature  *string  `json:"signature"`
}

func validateEnvelope(v *validator.Validate, envelope entities.SyncEnvelope) error {
	input := envelopeInput{
		ID:        envelope.ID,
		Type:      string(envelope.Type),
		Timestamp: envelope.Timestamp,
	}
	if err := v.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEnvelope, err.Error())
	}
	return nil
}

func decodeData(v *validator.Validate, raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: data is required", ErrInvalidEnvelope)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: data: %s", ErrInvalidEnvelope, err.Error())
	}
	if err := v.Struct(dst); err != nil {
		return fmt.Errorf("%w: data: %s", ErrInvalidEnvelope, err.Error())
	}
	return nil
}
