package sync_pending_get

import (
	"net/http"

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
	pending, err := h.service.PendingCount(r.Context())
	if err != nil {
		h.log.Error("count pending outbox events", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = render.JSON(w, http.StatusOK, dto.SyncPendingResponse{Pending: pending})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
