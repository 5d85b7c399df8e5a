package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teleworkapp/telework-backend-go/internal/domain/workday"
	"github.com/teleworkapp/telework-backend-go/internal/handler/http/response"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/validator"
)

type WorkDayHandler interface {
	// Get returns a single day's classification (implicit office included)
	Get(w http.ResponseWriter, r *http.Request)
	// Toggle advances a day through the office -> home -> absence cycle
	Toggle(w http.ResponseWriter, r *http.Request)
	// List returns the stored records for a month or a date range
	List(w http.ResponseWriter, r *http.Request)
}

type workDayHandlerImpl struct {
	workDayService workday.WorkDayService
}

func NewWorkDayHandler(workDayService workday.WorkDayService) WorkDayHandler {
	return &workDayHandlerImpl{workDayService: workDayService}
}

// Get handles GET /workdays/{date}
func (h *workDayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.ValidationError(w, map[string]string{"date": "must be a valid YYYY-MM-DD date"})
		return
	}

	record, err := h.workDayService.Get(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workday.NewWorkDayResponse(date, record))
}

// Toggle handles POST /workdays/{date}/toggle
func (h *workDayHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.ValidationError(w, map[string]string{"date": "must be a valid YYYY-MM-DD date"})
		return
	}

	record, err := h.workDayService.Toggle(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// A nil record covers both the guarded no-op (weekend/holiday) and the
	// cycle returning to the implicit office default.
	response.Success(w, workday.NewWorkDayResponse(date, record))
}

// List handles GET /workdays?month=YYYY-MM and GET /workdays?start=&end=
func (h *workDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.listByQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workday.NewWorkDayListResponse(records))
}

func (h *workDayHandlerImpl) listByQuery(r *http.Request) ([]workday.WorkDay, error) {
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, ok := validator.IsValidMonth(monthStr)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "month", Message: "must be a valid YYYY-MM month"}}
		}
		return h.workDayService.RecordsInMonth(r.Context(), month.Year(), month.Month())
	}

	start, end, errs := parseRangeParams(r)
	if errs != nil {
		return nil, errs
	}
	return h.workDayService.RecordsInRange(r.Context(), start, end)
}

// parseRangeParams validates the start/end query parameters shared by the
// work-day and holiday listing endpoints.
func parseRangeParams(r *http.Request) (time.Time, time.Time, validator.ValidationErrors) {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDate(r.URL.Query().Get("start"))
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "must be a valid YYYY-MM-DD date"})
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end"))
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must be a valid YYYY-MM-DD date"})
	}
	if errs == nil && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must not be before start"})
	}
	if errs != nil {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}
