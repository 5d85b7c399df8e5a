package workday

import (
	"context"
	"time"
)

// WorkDayService exposes the day toggle and the read side of the work-day
// store.
type WorkDayService interface {
	// Get returns the record for a date, nil meaning an implicit office day.
	Get(ctx context.Context, date time.Time) (*WorkDay, error)

	// Toggle advances the date one step through the
	// Office -> Home -> Absence -> Office cycle and persists the result.
	// Weekends and holidays are refused silently: the call returns
	// (nil, nil) and nothing is written. A nil record on a working day
	// means the date just cycled back to office.
	Toggle(ctx context.Context, date time.Time) (*WorkDay, error)

	// RecordsInRange returns the stored records in [start, end], date ascending.
	RecordsInRange(ctx context.Context, start, end time.Time) ([]WorkDay, error)

	// RecordsInMonth returns the stored records of a single month.
	RecordsInMonth(ctx context.Context, year int, month time.Month) ([]WorkDay, error)
}
