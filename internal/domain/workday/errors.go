package workday

import "errors"

var (
	ErrWorkDayNotFound = errors.New("work day record not found")

	// Validation Errors
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)
