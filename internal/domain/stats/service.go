package stats

import "context"

// StatsService computes compliance statistics over the holiday and work-day
// stores. Results are derived fresh on every call, never cached.
type StatsService interface {
	// QuarterStatistics classifies every day of the quarter and aggregates
	// counts, percentages and remaining-day targets.
	QuarterStatistics(ctx context.Context, year, quarter int) (*QuarterStatistics, error)
}
