package stats

import (
	"math"
	"time"

	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

// The 60/40 policy: at least 60% of effective days in the office, at most
// 40% at home.
const (
	OfficeRatio = 0.60
	HomeRatio   = 0.40
)

// OfficeTarget is the minimum number of office days for the given effective
// days. Rounds up, so together with HomeTarget the targets never exceed the
// effective days.
func OfficeTarget(effectiveDays int) int {
	return int(math.Ceil(float64(effectiveDays) * OfficeRatio))
}

// HomeTarget is the maximum number of home days for the given effective
// days. Rounds down.
func HomeTarget(effectiveDays int) int {
	return int(math.Floor(float64(effectiveDays) * HomeRatio))
}

// CurrentQuarter returns the quarter today falls in.
func CurrentQuarter() int {
	return dateutil.QuarterOf(time.Now())
}

// QuarterName returns the display label for a quarter.
func QuarterName(quarter int) string {
	switch quarter {
	case 1:
		return "Q1 (January - March)"
	case 2:
		return "Q2 (April - June)"
	case 3:
		return "Q3 (July - September)"
	case 4:
		return "Q4 (October - December)"
	default:
		return "Unknown"
	}
}
