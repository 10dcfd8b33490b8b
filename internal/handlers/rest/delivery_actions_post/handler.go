package delivery_actions_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	"github.com/tarekkanon/nightshift-logistics/internal/service/delivery"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

// Фото и подпись несут данные и идут через свои ручки.
var errPayloadAction = errors.New("photo and signature actions have dedicated endpoints")

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

	var actionDTO dto.PostDeliveriesIdActionsJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: "invalid request body"})
		return
	}

	actionType := entities.ActionType(actionDTO.Type)
	if actionType == entities.ActionPhotoCaptured || actionType == entities.ActionSignatureCaptured {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: errPayloadAction.Error()})
		return
	}

	cmd := entities.ActionCommand{
		DeliveryID: deliveryID,
		Type:       actionType,
		Comments:   actionDTO.Comments,
		Km:         actionDTO.Km,
		Confirmed:  pointer.GetBool(actionDTO.Confirmed),
	}

	result, err := h.service.LogAction(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, delivery.ErrConfirmationRequired) {
			h.writeJSON(w, http.StatusPreconditionRequired, dto.ConfirmationRequired{
				Error: err.Error(),
				Preview: dto.ActionPreview{
					Type:     actionDTO.Type,
					Km:       actionDTO.Km,
					Comments: actionDTO.Comments,
				},
			})
			return
		}

		status, encodeErr := render.DeliveryError(w, err)
		if status == http.StatusInternalServerError {
			h.log.Error("log delivery action",
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("action", cmd.Type.String()),
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
