package entities

import (
	"errors"
	"fmt"
)

type DeliveryStatus string

const (
	StatusCreated   DeliveryStatus = "created"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusWaiting   DeliveryStatus = "waiting"
	StatusCompleted DeliveryStatus = "completed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusPickedUp, StatusWaiting, StatusCompleted:
		return true
	default:
		return false
	}
}

type ActionType string

const (
	ActionCreated           ActionType = "created"
	ActionPickupConfirmed   ActionType = "pickup_confirmed"
	ActionDeliveryCompleted ActionType = "delivery_completed"
	ActionWaitingStart      ActionType = "waiting_start"
	ActionWaitingEnd        ActionType = "waiting_end"
	ActionIssue             ActionType = "issue"
	ActionFuelStop          ActionType = "fuel_stop"
	ActionPhotoCaptured     ActionType = "photo_captured"
	ActionSignatureCaptured ActionType = "signature_captured"
)

func (t ActionType) String() string {
	return string(t)
}

func (t ActionType) IsValid() bool {
	switch t {
	case ActionCreated, ActionPickupConfirmed, ActionDeliveryCompleted,
		ActionWaitingStart, ActionWaitingEnd, ActionIssue, ActionFuelStop,
		ActionPhotoCaptured, ActionSignatureCaptured:
		return true
	default:
		return false
	}
}

// RequiresConfirmation действия, которые водитель подтверждает перед записью.
func (t ActionType) RequiresConfirmation() bool {
	return t == ActionPickupConfirmed || t == ActionDeliveryCompleted
}

// DefaultNote текст действия, если водитель не оставил комментарий.
func (t ActionType) DefaultNote() string {
	switch t {
	case ActionCreated:
		return "Delivery created"
	case ActionPickupConfirmed:
		return "Pickup confirmed"
	case ActionDeliveryCompleted:
		return "Delivery completed"
	case ActionWaitingStart:
		return "Waiting started"
	case ActionWaitingEnd:
		return "Waiting ended"
	case ActionIssue:
		return "Issue reported"
	case ActionFuelStop:
		return "Fuel stop"
	case ActionPhotoCaptured:
		return "Photo captured"
	case ActionSignatureCaptured:
		return "Signature captured"
	default:
		return string(t)
	}
}

var (
	ErrUnknownActionType = errors.New("unknown action type")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDeliveryCompleted = errors.New("delivery already completed")
	ErrEmptyActionLog    = errors.New("empty action log")
)

// Next переход статуса по действию. Пустой статус означает еще не созданную доставку:
// из него допустимо только created.
func (s DeliveryStatus) Next(action ActionType) (DeliveryStatus, error) {
	if !action.IsValid() {
		return s, fmt.Errorf("%w: %s", ErrUnknownActionType, action)
	}
	if s == StatusCompleted {
		return s, ErrDeliveryCompleted
	}

	switch action {
	case ActionCreated:
		if s == "" {
			return StatusCreated, nil
		}
	case ActionPickupConfirmed:
		if s == StatusCreated {
			return StatusPickedUp, nil
		}
	case ActionWaitingStart:
		if s == StatusPickedUp {
			return StatusWaiting, nil
		}
	case ActionWaitingEnd:
		if s == StatusWaiting {
			return StatusPickedUp, nil
		}
	case ActionDeliveryCompleted:
		if s == StatusPickedUp || s == StatusWaiting {
			return StatusCompleted, nil
		}
	case ActionIssue, ActionFuelStop, ActionPhotoCaptured, ActionSignatureCaptured:
		if s != "" {
			return s, nil
		}
	}

	return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, statusOrNone(s), action)
}

// Replay выводит статус из журнала действий с нуля.
func Replay(actions []Action) (DeliveryStatus, error) {
	if len(actions) == 0 {
		return "", ErrEmptyActionLog
	}

	var status DeliveryStatus
	for i, action := range actions {
		next, err := status.Next(action.Type)
		if err != nil {
			return status, fmt.Errorf("action %d: %w", i, err)
		}
		status = next
	}
	return status, nil
}

func statusOrNone(s DeliveryStatus) string {
	if s == "" {
		return "none"
	}
	return s.String()
}
