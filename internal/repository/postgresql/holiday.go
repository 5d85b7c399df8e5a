package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/database"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

type holidayRepository struct {
	db *database.DB
}

// Create implements holiday.HolidayRepository. Inserting a date that already
// exists is a no-op, which makes concurrent seeding of the same year safe.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate holiday id: %w", err)
	}

	query := `
		INSERT INTO holidays (id, date, name, category)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, id.String(), h.Date, h.Name, string(h.Category)); err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	return nil
}

// ExistsByDate implements holiday.HolidayRepository.
func (r *holidayRepository) ExistsByDate(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday by date: %w", err)
	}

	return exists, nil
}

// ExistsInYear implements holiday.HolidayRepository.
func (r *holidayRepository) ExistsInYear(ctx context.Context, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	start := dateutil.Date(year, time.January, 1)
	end := dateutil.Date(year, time.December, 31)

	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date >= $1 AND date <= $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holidays in year: %w", err)
	}

	return exists, nil
}

// ListByRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, category, created_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Category, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		h.Date = dateutil.Truncate(h.Date)
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
