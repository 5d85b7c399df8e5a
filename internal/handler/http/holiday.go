package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/handler/http/response"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/validator"
)

type HolidayHandler interface {
	// List returns holidays for a year, month or date range
	List(w http.ResponseWriter, r *http.Request)
	// Check answers whether a single date is a holiday
	Check(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

// List handles GET /holidays?year= / ?month=YYYY-MM / ?start=&end=
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.listByQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holiday.NewHolidayListResponse(holidays))
}

func (h *holidayHandlerImpl) listByQuery(r *http.Request) ([]holiday.Holiday, error) {
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if !validator.IsNumeric(yearStr) {
			return nil, validator.ValidationErrors{{Field: "year", Message: "must be a number"}}
		}
		year, _ := strconv.Atoi(yearStr)
		return h.holidayService.HolidaysInYear(r.Context(), year)
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, ok := validator.IsValidMonth(monthStr)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "month", Message: "must be a valid YYYY-MM month"}}
		}
		return h.holidayService.HolidaysInMonth(r.Context(), month.Year(), month.Month())
	}

	start, end, errs := parseRangeParams(r)
	if errs != nil {
		return nil, errs
	}
	return h.holidayService.HolidaysInRange(r.Context(), start, end)
}

// Check handles GET /holidays/{date}
func (h *holidayHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.ValidationError(w, map[string]string{"date": "must be a valid YYYY-MM-DD date"})
		return
	}

	isHoliday, err := h.holidayService.IsHoliday(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := holiday.CheckResponse{
		Date:      chi.URLParam(r, "date"),
		IsHoliday: isHoliday,
	}
	if isHoliday {
		holidays, err := h.holidayService.HolidaysInRange(r.Context(), date, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if len(holidays) == 1 {
			hr := holiday.NewHolidayResponse(holidays[0])
			result.Holiday = &hr
		}
	}

	response.Success(w, result)
}
