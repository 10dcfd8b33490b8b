package deliveries_post

import (
	"net/http"

	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	delivery, err := h.service.CreateNewDelivery(r.Context())
	if err != nil {
		status, encodeErr := render.DeliveryError(w, err)
		if status == http.StatusInternalServerError {
			h.log.Error("create delivery", logger.NewField("error", err))
		}
		if encodeErr != nil {
			h.log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
		}
		return
	}

	w.Header().Set("Location", "/deliveries/"+delivery.ID)
	err = render.JSON(w, http.StatusCreated, render.Delivery(delivery))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
