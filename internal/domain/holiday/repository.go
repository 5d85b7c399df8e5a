package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines the persistence contract for the holiday table.
// Dates are the unique key; duplicate inserts must be silent no-ops.
type HolidayRepository interface {
	// Create inserts a holiday, assigning its ID. Inserting a date that
	// already exists is a no-op.
	Create(ctx context.Context, h Holiday) error

	// ExistsByDate reports whether the date is a holiday.
	ExistsByDate(ctx context.Context, date time.Time) (bool, error)

	// ExistsInYear reports whether any holiday is stored for the year.
	ExistsInYear(ctx context.Context, year int) (bool, error)

	// ListByRange returns the holidays in [start, end], sorted by date ascending.
	ListByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
