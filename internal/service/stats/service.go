package stats

import (
	"context"

	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/domain/stats"
	"github.com/teleworkapp/telework-backend-go/internal/domain/workday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
	"golang.org/x/sync/errgroup"
)

type StatsServiceImpl struct {
	workDayRepo    workday.WorkDayRepository
	holidayService holiday.HolidayService
}

func NewStatsService(
	workDayRepo workday.WorkDayRepository,
	holidayService holiday.HolidayService,
) stats.StatsService {
	return &StatsServiceImpl{
		workDayRepo:    workDayRepo,
		holidayService: holidayService,
	}
}

// QuarterStatistics implements stats.StatsService.
// Days without a record are office days; absence days are excluded from the
// percentage denominator entirely.
func (s *StatsServiceImpl) QuarterStatistics(ctx context.Context, year, quarter int) (*stats.QuarterStatistics, error) {
	if quarter < 1 || quarter > 4 {
		return nil, stats.ErrInvalidQuarter
	}
	if year < holiday.MinYear || year > holiday.MaxYear {
		return nil, holiday.ErrInvalidYear
	}

	start, end := dateutil.QuarterRange(year, quarter)

	// The holiday and work-day ranges are independent reads.
	var (
		holidays []holiday.Holiday
		records  []workday.WorkDay
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holidays, err = s.holidayService.HolidaysInRange(gCtx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.workDayRepo.ListByRange(gCtx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	holidayDates := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidayDates[dateutil.Format(h.Date)] = struct{}{}
	}

	// Working days: everything in range that is neither weekend nor holiday.
	workingDays := 0
	for d := start; !d.After(end); d = dateutil.NextDay(d) {
		if dateutil.IsWeekend(d) {
			continue
		}
		if _, isHoliday := holidayDates[dateutil.Format(d)]; isHoliday {
			continue
		}
		workingDays++
	}

	homeDays := 0
	absenceDays := 0
	for _, wd := range records {
		switch wd.Type {
		case workday.WorkTypeHome:
			homeDays++
		case workday.WorkTypeAbsence:
			absenceDays++
		}
	}

	effectiveDays := workingDays - absenceDays
	officeDays := effectiveDays - homeDays

	var officePercentage, homePercentage float64
	if effectiveDays > 0 {
		officePercentage = float64(officeDays) / float64(effectiveDays) * 100
		homePercentage = float64(homeDays) / float64(effectiveDays) * 100
	}

	officeTarget := stats.OfficeTarget(effectiveDays)
	homeTarget := stats.HomeTarget(effectiveDays)

	return &stats.QuarterStatistics{
		Year:        year,
		Quarter:     quarter,
		QuarterName: stats.QuarterName(quarter),
		StartDate:   dateutil.Format(start),
		EndDate:     dateutil.Format(end),

		WorkingDays:   workingDays,
		EffectiveDays: effectiveDays,
		OfficeDays:    officeDays,
		HomeDays:      homeDays,
		AbsenceDays:   absenceDays,
		HolidayCount:  len(holidays),

		OfficePercentage: officePercentage,
		HomePercentage:   homePercentage,

		OfficeTarget:        officeTarget,
		HomeTarget:          homeTarget,
		OfficeRemainingDays: max(0, officeTarget-officeDays),
		HomeAvailableDays:   max(0, homeTarget-homeDays),
		// A quarter with no effective days trivially satisfies the goal.
		GoalAchieved: officePercentage >= 60 || effectiveDays == 0,
	}, nil
}
