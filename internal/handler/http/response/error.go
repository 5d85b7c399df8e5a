package response

import (
	"errors"
	"net/http"

	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/domain/stats"
	"github.com/teleworkapp/telework-backend-go/internal/domain/workday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Stats domain errors
	case errors.Is(err, stats.ErrInvalidQuarter):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	// Work day domain errors
	case errors.Is(err, workday.ErrWorkDayNotFound):
		NotFound(w, "Work day record not found")
	case errors.Is(err, workday.ErrInvalidDateFormat):
		BadRequest(w, err.Error(), nil)

	// Default: store failures and anything unexpected
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
