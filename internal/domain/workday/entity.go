package workday

import "time"

// WorkDay is a persisted work-location override for a single date.
// Only Home and Absence days are ever stored; a date without a record is an
// office day by default.
type WorkDay struct {
	ID        string
	Date      time.Time
	Type      WorkType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WorkType string

const (
	WorkTypeOffice  WorkType = "office" // implicit, never persisted
	WorkTypeHome    WorkType = "home"
	WorkTypeAbsence WorkType = "absence"
)

// NextWorkType advances the toggle cycle:
// Office -> Home -> Absence -> Office.
func NextWorkType(current WorkType) WorkType {
	switch current {
	case WorkTypeHome:
		return WorkTypeAbsence
	case WorkTypeAbsence:
		return WorkTypeOffice
	default:
		return WorkTypeHome
	}
}
