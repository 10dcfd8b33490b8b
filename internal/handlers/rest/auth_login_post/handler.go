package auth_login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
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
	var loginDTO dto.PostAuthLoginJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Login(r.Context(), loginDTO.Pin)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPINFormat):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidPIN):
			h.log.Warn("failed login attempt", logger.NewField("remote_addr", r.RemoteAddr))
			h.writeError(w, http.StatusUnauthorized, err.Error())
		default:
			h.log.Error("login", logger.NewField("error", err))
			h.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	response := dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}

	err = render.JSON(w, http.StatusOK, response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	err := render.Error(w, status, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
