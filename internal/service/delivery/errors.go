package delivery

import (
	"errors"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
)

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidFilter     = errors.New("invalid delivery filter")

	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrDeliveryAlreadyExists = errors.New("delivery already exists")

	ErrInvalidActionType = entities.ErrUnknownActionType
	ErrInvalidTransition = entities.ErrInvalidTransition
	ErrDeliveryCompleted = entities.ErrDeliveryCompleted

	ErrConfirmationRequired = errors.New("action requires driver confirmation")
	ErrInvalidOdometer      = errors.New("invalid odometer reading")

	ErrInvalidImage      = errors.New("invalid image")
	ErrImageTooLarge     = errors.New("image too large")
	ErrPhotoLimitReached = errors.New("photo limit reached")

	ErrInvalidSignature  = errors.New("invalid signature")
	ErrSignatureTooLarge = errors.New("signature too large")
)
