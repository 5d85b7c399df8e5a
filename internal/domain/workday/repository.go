package workday

import (
	"context"
	"time"
)

// WorkDayRepository defines the persistence contract for work-day overrides.
// The date is the unique key.
type WorkDayRepository interface {
	// GetByDate returns the record for a date, or nil when none exists
	// (implicit office day).
	GetByDate(ctx context.Context, date time.Time) (*WorkDay, error)

	// Create inserts a new record, assigning its ID and timestamps.
	Create(ctx context.Context, wd WorkDay) (WorkDay, error)

	// UpdateType changes the work type of an existing record.
	UpdateType(ctx context.Context, id string, workType WorkType) error

	// Delete removes a record, returning the date to its implicit default.
	Delete(ctx context.Context, id string) error

	// ListByRange returns the records in [start, end], sorted by date ascending.
	ListByRange(ctx context.Context, start, end time.Time) ([]WorkDay, error)
}
