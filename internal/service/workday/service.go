package workday

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/domain/workday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/database"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
	"github.com/teleworkapp/telework-backend-go/internal/repository/postgresql"
)

type WorkDayServiceImpl struct {
	db             *database.DB
	workDayRepo    workday.WorkDayRepository
	holidayService holiday.HolidayService
}

func NewWorkDayService(
	db *database.DB,
	workDayRepo workday.WorkDayRepository,
	holidayService holiday.HolidayService,
) workday.WorkDayService {
	return &WorkDayServiceImpl{
		db:             db,
		workDayRepo:    workDayRepo,
		holidayService: holidayService,
	}
}

// Get implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Get(ctx context.Context, date time.Time) (*workday.WorkDay, error) {
	return s.workDayRepo.GetByDate(ctx, dateutil.Truncate(date))
}

// Toggle implements workday.WorkDayService.
// Weekend and holiday dates are refused silently: (nil, nil), no write.
// The read-modify-write runs inside a transaction; the unique date key makes
// concurrent toggles on the same date serialize on the row.
func (s *WorkDayServiceImpl) Toggle(ctx context.Context, date time.Time) (*workday.WorkDay, error) {
	date = dateutil.Truncate(date)

	if dateutil.IsWeekend(date) {
		return nil, nil
	}

	isHoliday, err := s.holidayService.IsHoliday(ctx, date)
	if err != nil {
		return nil, err
	}
	if isHoliday {
		return nil, nil
	}

	var result *workday.WorkDay
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.workDayRepo.GetByDate(txCtx, date)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			// no record (office by default) -> home
			created, err := s.workDayRepo.Create(txCtx, workday.WorkDay{
				Date: date,
				Type: workday.WorkTypeHome,
			})
			if err != nil {
				return err
			}
			result = &created

		case existing.Type == workday.WorkTypeHome:
			// home -> absence
			if err := s.workDayRepo.UpdateType(txCtx, existing.ID, workday.WorkTypeAbsence); err != nil {
				return err
			}
			existing.Type = workday.WorkTypeAbsence
			result = existing

		default:
			// absence -> delete (back to office by default)
			if err := s.workDayRepo.Delete(txCtx, existing.ID); err != nil {
				return err
			}
			result = nil
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RecordsInRange implements workday.WorkDayService.
func (s *WorkDayServiceImpl) RecordsInRange(ctx context.Context, start, end time.Time) ([]workday.WorkDay, error) {
	return s.workDayRepo.ListByRange(ctx, dateutil.Truncate(start), dateutil.Truncate(end))
}

// RecordsInMonth implements workday.WorkDayService.
func (s *WorkDayServiceImpl) RecordsInMonth(ctx context.Context, year int, month time.Month) ([]workday.WorkDay, error) {
	start, end := dateutil.MonthRange(year, month)
	return s.workDayRepo.ListByRange(ctx, start, end)
}
