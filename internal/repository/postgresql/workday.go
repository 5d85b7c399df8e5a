package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/teleworkapp/telework-backend-go/internal/domain/workday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/database"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

type workDayRepository struct {
	db *database.DB
}

// GetByDate implements workday.WorkDayRepository.
func (r *workDayRepository) GetByDate(ctx context.Context, date time.Time) (*workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, work_type, created_at, updated_at
		FROM work_days
		WHERE date = $1
	`

	var wd workday.WorkDay
	err := q.QueryRow(ctx, query, date).Scan(&wd.ID, &wd.Date, &wd.Type, &wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record, implicit office day
		}
		return nil, fmt.Errorf("failed to get work day by date: %w", err)
	}

	wd.Date = dateutil.Truncate(wd.Date)
	return &wd, nil
}

// Create implements workday.WorkDayRepository.
func (r *workDayRepository) Create(ctx context.Context, wd workday.WorkDay) (workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return workday.WorkDay{}, fmt.Errorf("failed to generate work day id: %w", err)
	}
	wd.ID = id.String()

	query := `
		INSERT INTO work_days (id, date, work_type)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, wd.ID, wd.Date, string(wd.Type)).Scan(&wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		return workday.WorkDay{}, fmt.Errorf("failed to create work day: %w", err)
	}

	return wd, nil
}

// UpdateType implements workday.WorkDayRepository.
func (r *workDayRepository) UpdateType(ctx context.Context, id string, workType workday.WorkType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_days
		SET work_type = $1, updated_at = now()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, string(workType), id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return workday.ErrWorkDayNotFound
		}
		return fmt.Errorf("failed to update work day: %w", err)
	}

	return nil
}

// Delete implements workday.WorkDayRepository.
func (r *workDayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM work_days WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete work day: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return workday.ErrWorkDayNotFound
	}

	return nil
}

// ListByRange implements workday.WorkDayRepository.
func (r *workDayRepository) ListByRange(ctx context.Context, start, end time.Time) ([]workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, work_type, created_at, updated_at
		FROM work_days
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query work days: %w", err)
	}
	defer rows.Close()

	var records []workday.WorkDay
	for rows.Next() {
		var wd workday.WorkDay
		if err := rows.Scan(&wd.ID, &wd.Date, &wd.Type, &wd.CreatedAt, &wd.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work day: %w", err)
		}
		wd.Date = dateutil.Truncate(wd.Date)
		records = append(records, wd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work days: %w", err)
	}

	return records, nil
}

func NewWorkDayRepository(db *database.DB) workday.WorkDayRepository {
	return &workDayRepository{db: db}
}
