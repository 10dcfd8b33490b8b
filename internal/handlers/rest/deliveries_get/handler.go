package deliveries_get

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	"github.com/tarekkanon/nightshift-logistics/internal/service/delivery"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

var errInvalidPagination = errors.New("limit and offset must be non-negative integers")

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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		if encodeErr := render.Error(w, http.StatusBadRequest, err.Error()); encodeErr != nil {
			h.log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
		}
		return
	}

	deliveries, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		status, encodeErr := render.DeliveryError(w, err)
		if status == http.StatusInternalServerError {
			h.log.Error("list deliveries", logger.NewField("error", err))
		}
		if encodeErr != nil {
			h.log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
		}
		return
	}

	response := dto.DeliveryList{
		Deliveries: make([]dto.DeliverySummary, 0, len(deliveries)),
		Limit:      delivery.EffectiveLimit(filter.Limit),
		Offset:     filter.Offset,
	}
	for _, d := range deliveries {
		response.Deliveries = append(response.Deliveries, render.DeliverySummary(d))
	}

	err = render.JSON(w, http.StatusOK, response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(query url.Values) (entities.DeliveryFilter, error) {
	var filter entities.DeliveryFilter

	if status := query.Get("status"); status != "" {
		s := entities.DeliveryStatus(status)
		filter.Status = &s
	}

	var err error
	if filter.Limit, err = parseUint(query.Get("limit")); err != nil {
		return filter, errInvalidPagination
	}
	if filter.Offset, err = parseUint(query.Get("offset")); err != nil {
		return filter, errInvalidPagination
	}

	return filter, nil
}

func parseUint(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
