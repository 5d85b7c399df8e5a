package holiday

import "errors"

var (
	// ErrInvalidYear is returned for years outside the Gregorian calendar
	// range the Easter computation is valid for.
	ErrInvalidYear = errors.New("year must be between 1583 and 4099")
)
