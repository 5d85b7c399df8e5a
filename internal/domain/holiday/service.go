package holiday

import (
	"context"
	"time"
)

// HolidayService seeds and queries the holiday calendar. Range queries seed
// every year they touch, so callers never observe an unseeded year.
type HolidayService interface {
	// EnsureYearSeeded inserts the Madrid calendar for a year on first
	// access. Idempotent; a year that already has any stored holiday is
	// left untouched.
	EnsureYearSeeded(ctx context.Context, year int) error

	// IsHoliday reports whether the date is a public holiday.
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// HolidaysInRange returns the holidays in [start, end], date ascending.
	HolidaysInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// HolidaysInMonth returns the holidays of a single month.
	HolidaysInMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)

	// HolidaysInYear returns the full holiday calendar of a year.
	HolidaysInYear(ctx context.Context, year int) ([]Holiday, error)
}
