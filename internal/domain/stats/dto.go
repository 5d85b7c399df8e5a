package stats

// QuarterStatistics is a derived snapshot, recomputed on every query.
// Percentages and targets use effective days (working days minus absences)
// as their denominator: absent days count neither as office nor as home.
type QuarterStatistics struct {
	Year        int    `json:"year"`
	Quarter     int    `json:"quarter"`
	QuarterName string `json:"quarter_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	WorkingDays   int `json:"working_days"`
	EffectiveDays int `json:"effective_days"`
	OfficeDays    int `json:"office_days"`
	HomeDays      int `json:"home_days"`
	AbsenceDays   int `json:"absence_days"`
	HolidayCount  int `json:"holiday_count"`

	OfficePercentage float64 `json:"office_percentage"`
	HomePercentage   float64 `json:"home_percentage"`

	OfficeTarget        int  `json:"office_target"`
	HomeTarget          int  `json:"home_target"`
	OfficeRemainingDays int  `json:"office_remaining_days"`
	HomeAvailableDays   int  `json:"home_available_days"`
	GoalAchieved        bool `json:"goal_achieved"`
}
