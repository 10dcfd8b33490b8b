package delivery_photos_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
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

	var photoDTO dto.PostDeliveriesIdPhotosJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&photoDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: "invalid request body"})
		return
	}

	result, err := h.service.CapturePhoto(r.Context(), deliveryID, photoDTO.Data, photoDTO.Comments)
	if err != nil {
		status, encodeErr := render.DeliveryError(w, err)
		if status == http.StatusInternalServerError {
			h.log.Error("capture photo",
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("error", err),
			)
		}
		if encodeErr != nil {
			h.log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, render.Delivery(result))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	err := render.JSON(w, status, v)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
