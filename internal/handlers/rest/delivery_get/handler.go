package delivery_get

import (
	"net/http"

	"github.com/gorilla/mux"
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
	deliveryID := mux.Vars(r)["id"]

	delivery, err := h.service.GetDelivery(r.Context(), deliveryID)
	if err != nil {
		status, encodeErr := render.DeliveryError(w, err)
		if status == http.StatusInternalServerError {
			h.log.Error("get delivery",
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("error", err),
			)
		}
		if encodeErr != nil {
			h.log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
		}
		return
	}

	err = render.JSON(w, http.StatusOK, render.Delivery(delivery))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
