package sync_batch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	syncservice "github.com/tarekkanon/nightshift-logistics/internal/service/sync"
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
	var batchDTO dto.PostSyncBatchJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&batchDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: "invalid request body"})
		return
	}

	envelopes := make([]entities.SyncEnvelope, 0, len(batchDTO.Envelopes))
	for _, e := range batchDTO.Envelopes {
		envelopes = append(envelopes, entities.SyncEnvelope{
			ID:        e.Id,
			Type:      entities.EnvelopeType(e.Type),
			Timestamp: e.Timestamp,
			Data:      e.Data,
		})
	}

	results, err := h.service.ApplyBatch(r.Context(), envelopes)
	if err != nil {
		switch {
		case errors.Is(err, syncservice.ErrEmptyBatch):
			h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, syncservice.ErrBatchTooLarge):
			h.writeJSON(w, http.StatusRequestEntityTooLarge, dto.Error{Error: err.Error()})
		default:
			h.log.Error("apply sync batch",
				logger.NewField("envelopes", len(envelopes)),
				logger.NewField("error", err),
			)
			h.writeJSON(w, http.StatusInternalServerError, dto.Error{Error: http.StatusText(http.StatusInternalServerError)})
		}
		return
	}

	response := dto.SyncBatchResponse{Results: make([]dto.SyncResult, 0, len(results))}
	for _, res := range results {
		item := dto.SyncResult{
			EnvelopeId: res.EnvelopeID,
			Status:     dto.SyncResultStatus(res.Status),
		}
		if res.DeliveryID != "" {
			item.DeliveryId = &res.DeliveryID
		}
		if res.Error != "" {
			item.Error = &res.Error
		}
		response.Results = append(response.Results, item)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	err := render.JSON(w, status, v)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
