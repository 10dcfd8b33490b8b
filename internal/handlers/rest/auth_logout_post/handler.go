package auth_logout_post

import (
	"errors"
	"net/http"

	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/driver_auth"
	"github.com/tarekkanon/nightshift-logistics/internal/service/auth"
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
	token, ok := driver_auth.BearerToken(r)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
		return
	}

	err := h.service.Logout(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			h.writeError(w, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
			return
		}
		h.log.Error("logout", logger.NewField("error", err))
		h.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	err := render.Error(w, status, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
