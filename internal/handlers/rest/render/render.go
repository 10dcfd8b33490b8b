// Package render общие для REST ручек преобразования в DTO и запись JSON ответов.
package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/service/delivery"
)

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.Error{Error: message})
}

// DeliveryErrorStatus HTTP код для ошибок сервиса доставок.
func DeliveryErrorStatus(err error) int {
	switch {
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		return http.StatusNotFound
	case errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, delivery.ErrDeliveryCompleted),
		errors.Is(err, delivery.ErrDeliveryAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, delivery.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, delivery.ErrImageTooLarge),
		errors.Is(err, delivery.ErrPhotoLimitReached),
		errors.Is(err, delivery.ErrSignatureTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, delivery.ErrInvalidDeliveryID),
		errors.Is(err, delivery.ErrInvalidFilter),
		errors.Is(err, delivery.ErrInvalidActionType),
		errors.Is(err, delivery.ErrInvalidOdometer),
		errors.Is(err, delivery.ErrInvalidImage),
		errors.Is(err, delivery.ErrInvalidSignature):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// DeliveryError пишет ответ об ошибке. Текст внутренних ошибок наружу не отдается.
func DeliveryError(w http.ResponseWriter, err error) (int, error) {
	status := DeliveryErrorStatus(err)
	if status == http.StatusInternalServerError {
		return status, Error(w, status, http.StatusText(status))
	}
	return status, Error(w, status, err.Error())
}

func Delivery(d *entities.Delivery) dto.Delivery {
	result := dto.Delivery{
		Id:         d.ID,
		Status:     dto.DeliveryStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		KmPickup:   d.KmPickup,
		KmDelivery: d.KmDelivery,
		Actions:    make([]dto.Action, 0, len(d.Actions)),
		Photos:     make([]dto.Photo, 0, len(d.Photos)),
	}

	if distance, ok := d.TotalDistance(); ok {
		result.TotalDistance = &distance
	}

	for _, a := range d.Actions {
		result.Actions = append(result.Actions, dto.Action{
			Type:      dto.ActionType(a.Type),
			Timestamp: a.Timestamp,
			Note:      a.Note,
			Km:        a.Km,
			Comments:  a.Comments,
		})
	}

	for _, p := range d.Photos {
		result.Photos = append(result.Photos, dto.Photo{Timestamp: p.Timestamp, Data: p.Data})
	}

	if d.Signature != nil {
		result.Signature = &dto.Signature{Timestamp: d.Signature.Timestamp, Data: d.Signature.Data}
	}

	return result
}

func DeliverySummary(s entities.DeliverySummary) dto.DeliverySummary {
	result := dto.DeliverySummary{
		Id:           s.ID,
		Status:       dto.DeliveryStatus(s.Status),
		CreatedAt:    s.CreatedAt,
		ActionsCount: s.ActionsCount,
		PhotosCount:  s.PhotosCount,
		LastActionAt: s.LastActionAt,
		KmPickup:     s.KmPickup,
		KmDelivery:   s.KmDelivery,
	}

	if s.KmPickup != nil && s.KmDelivery != nil {
		distance := *s.KmDelivery - *s.KmPickup
		result.TotalDistance = &distance
	}

	return result
}
