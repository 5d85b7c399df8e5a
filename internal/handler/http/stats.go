package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/teleworkapp/telework-backend-go/internal/domain/stats"
	"github.com/teleworkapp/telework-backend-go/internal/handler/http/response"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/validator"
)

type StatsHandler interface {
	// GetQuarterStatistics returns the compliance snapshot for a quarter
	GetQuarterStatistics(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{statsService: statsService}
}

// GetQuarterStatistics handles GET /stats/quarter?year=&quarter=
// Both parameters default to today's year and quarter.
func (h *statsHandlerImpl) GetQuarterStatistics(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	quarter := stats.CurrentQuarter()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if !validator.IsNumeric(yearStr) {
			response.ValidationError(w, map[string]string{"year": "must be a number"})
			return
		}
		year, _ = strconv.Atoi(yearStr)
	}
	if quarterStr := r.URL.Query().Get("quarter"); quarterStr != "" {
		if !validator.IsNumeric(quarterStr) {
			response.ValidationError(w, map[string]string{"quarter": "must be a number"})
			return
		}
		quarter, _ = strconv.Atoi(quarterStr)
	}

	result, err := h.statsService.QuarterStatistics(r.Context(), year, quarter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
