package stats_daily_get

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/generated/dto"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/render"
	"github.com/tarekkanon/nightshift-logistics/internal/service/stats"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

const dayLayout = time.DateOnly

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
	query := r.URL.Query()

	from, err := parseDay("from", query.Get("from"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	to, err := parseDay("to", query.Get("to"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	days, err := h.service.GetDaily(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, stats.ErrInvalidRange) {
			h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		h.log.Error("get daily stats", logger.NewField("error", err))
		h.writeJSON(w, http.StatusInternalServerError, dto.Error{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	response := dto.DailyStatsResponse{Days: make([]dto.DailyStats, 0, len(days))}
	for _, d := range days {
		response.Days = append(response.Days, dto.DailyStats{
			Day:       d.Day.Format(dayLayout),
			Created:   d.Created,
			Completed: d.Completed,
			Issues:    d.Issues,
			FuelStops: d.FuelStops,
			TotalKm:   d.TotalKm,
		})
	}

	h.writeJSON(w, http.StatusOK, response)
}

func parseDay(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("query parameter %q is required", name)
	}
	day, err := time.Parse(dayLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("query parameter %q must be YYYY-MM-DD", name)
	}
	return day, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	err := render.JSON(w, status, v)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
