package delivery_signature_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/signature"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

var errMissingSignature = errors.New("either data or width, height and strokes are required")

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

	var signatureDTO dto.PostDeliveriesIdSignatureJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&signatureDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: "invalid request body"})
		return
	}

	data, err := signatureData(signatureDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	result, err := h.service.CaptureSignature(r.Context(), deliveryID, data)
	if err != nil {
		status, encodeErr := render.DeliveryError(w, err)
		if status == http.StatusInternalServerError {
			h.log.Error("capture signature",
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

// signatureData готовый data URL либо PNG, отрисованный из штрихов.
func signatureData(req dto.CaptureSignatureRequest) (string, error) {
	if req.Data != nil {
		return *req.Data, nil
	}
	if req.Width == nil || req.Height == nil || req.Strokes == nil {
		return "", errMissingSignature
	}

	pad, err := signature.NewPad(*req.Width, *req.Height)
	if err != nil {
		return "", err
	}

	strokes := make([][]signature.Point, 0, len(*req.Strokes))
	for _, stroke := range *req.Strokes {
		points := make([]signature.Point, 0, len(stroke))
		for _, p := range stroke {
			points = append(points, signature.Point{X: p.X, Y: p.Y})
		}
		strokes = append(strokes, points)
	}
	pad.Replay(strokes)

	data, err := pad.Encode()
	if err != nil {
		return "", fmt.Errorf("render signature: %w", err)
	}
	return data, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	err := render.JSON(w, status, v)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
