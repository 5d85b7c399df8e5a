package workday

import (
	"time"

	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

// WorkDayResponse is the API view of a day's classification. Recorded is
// false for implicit office days (no stored record).
type WorkDayResponse struct {
	Date     string   `json:"date"`
	WorkType WorkType `json:"work_type"`
	Recorded bool     `json:"recorded"`
}

// NewWorkDayResponse maps an optional record to the API view; a nil record
// is the implicit office default.
func NewWorkDayResponse(date time.Time, wd *WorkDay) WorkDayResponse {
	if wd == nil {
		return WorkDayResponse{
			Date:     dateutil.Format(date),
			WorkType: WorkTypeOffice,
		}
	}
	return WorkDayResponse{
		Date:     dateutil.Format(wd.Date),
		WorkType: wd.Type,
		Recorded: true,
	}
}

func NewWorkDayListResponse(records []WorkDay) []WorkDayResponse {
	responses := make([]WorkDayResponse, 0, len(records))
	for _, wd := range records {
		responses = append(responses, NewWorkDayResponse(wd.Date, &wd))
	}
	return responses
}
