package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// EnsureYearSeeded implements holiday.HolidayService. A year with any stored
// holiday is treated as seeded. The first access inserts the Madrid calendar
// date by date, checking each date so a concurrent seeder or a stray record
// never causes a duplicate.
func (s *HolidayServiceImpl) EnsureYearSeeded(ctx context.Context, year int) error {
	seeded, err := s.holidayRepo.ExistsInYear(ctx, year)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	holidays, err := holiday.MadridHolidays(year)
	if err != nil {
		return err
	}

	for _, h := range holidays {
		exists, err := s.holidayRepo.ExistsByDate(ctx, h.Date)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.holidayRepo.Create(ctx, h); err != nil {
			return fmt.Errorf("failed to seed holiday %s: %w", dateutil.Format(h.Date), err)
		}
	}

	return nil
}

// IsHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	date = dateutil.Truncate(date)
	if err := s.EnsureYearSeeded(ctx, date.Year()); err != nil {
		return false, err
	}
	return s.holidayRepo.ExistsByDate(ctx, date)
}

// HolidaysInRange implements holiday.HolidayService. Every year the range
// touches is seeded first.
func (s *HolidayServiceImpl) HolidaysInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	start = dateutil.Truncate(start)
	end = dateutil.Truncate(end)

	for year := start.Year(); year <= end.Year(); year++ {
		if err := s.EnsureYearSeeded(ctx, year); err != nil {
			return nil, err
		}
	}

	return s.holidayRepo.ListByRange(ctx, start, end)
}

// HolidaysInMonth implements holiday.HolidayService.
func (s *HolidayServiceImpl) HolidaysInMonth(ctx context.Context, year int, month time.Month) ([]holiday.Holiday, error) {
	start, end := dateutil.MonthRange(year, month)
	return s.HolidaysInRange(ctx, start, end)
}

// HolidaysInYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) HolidaysInYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	start := dateutil.Date(year, time.January, 1)
	end := dateutil.Date(year, time.December, 31)
	return s.HolidaysInRange(ctx, start, end)
}
