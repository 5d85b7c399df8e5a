package holiday

import "github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"

type HolidayResponse struct {
	Date     string   `json:"date"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// CheckResponse answers a single-date membership query.
type CheckResponse struct {
	Date      string           `json:"date"`
	IsHoliday bool             `json:"is_holiday"`
	Holiday   *HolidayResponse `json:"holiday,omitempty"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		Date:     dateutil.Format(h.Date),
		Name:     h.Name,
		Category: h.Category,
	}
}

func NewHolidayListResponse(holidays []Holiday) []HolidayResponse {
	responses := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, NewHolidayResponse(h))
	}
	return responses
}
