package holiday

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teleworkapp/telework-backend-go/internal/domain/holiday"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

// fakeHolidayRepo is a date-keyed in-memory stand-in for the Postgres repo.
type fakeHolidayRepo struct {
	byDate  map[string]holiday.Holiday
	creates int
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{byDate: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) error {
	f.creates++
	key := dateutil.Format(h.Date)
	if _, exists := f.byDate[key]; exists {
		return nil // duplicate insert is a no-op, like ON CONFLICT DO NOTHING
	}
	f.byDate[key] = h
	return nil
}

func (f *fakeHolidayRepo) ExistsByDate(_ context.Context, date time.Time) (bool, error) {
	_, ok := f.byDate[dateutil.Format(date)]
	return ok, nil
}

func (f *fakeHolidayRepo) ExistsInYear(_ context.Context, year int) (bool, error) {
	for _, h := range f.byDate {
		if h.Date.Year() == year {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayRepo) ListByRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.byDate {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func TestEnsureYearSeeded_Idempotent(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureYearSeeded(ctx, 2024))
	assert.Len(t, repo.byDate, 14)
	firstCreates := repo.creates

	// A second call must not touch the repo's write path again.
	require.NoError(t, svc.EnsureYearSeeded(ctx, 2024))
	assert.Equal(t, firstCreates, repo.creates)
	assert.Len(t, repo.byDate, 14)
}

func TestEnsureYearSeeded_YearWithAnyHolidayShortCircuits(t *testing.T) {
	repo := newFakeHolidayRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, holiday.Holiday{
		Date:     dateutil.Date(2025, time.January, 1),
		Name:     "Año Nuevo",
		Category: holiday.CategoryNational,
	}))
	repo.creates = 0

	svc := NewHolidayService(repo)

	require.NoError(t, svc.EnsureYearSeeded(ctx, 2025))
	assert.Equal(t, 0, repo.creates, "a year with any holiday present is treated as seeded")
	assert.Len(t, repo.byDate, 1)
}

func TestEnsureYearSeeded_SkipsExistingDates(t *testing.T) {
	repo := newFakeHolidayRepo()
	ctx := context.Background()

	// A date from another year's record set must not block 2025 seeding,
	// and a 2025 date inserted by hand must be skipped, not duplicated.
	byHand := holiday.Holiday{
		Date:     dateutil.Date(2024, time.December, 25),
		Name:     "Navidad",
		Category: holiday.CategoryNational,
	}
	require.NoError(t, repo.Create(ctx, byHand))
	repo.creates = 0

	svc := NewHolidayService(repo)
	require.NoError(t, svc.EnsureYearSeeded(ctx, 2025))

	assert.Equal(t, 14, repo.creates)
	assert.Len(t, repo.byDate, 15) // 14 for 2025 plus the stray 2024 date
}

func TestIsHoliday_SeedsOnDemand(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)
	ctx := context.Background()

	got, err := svc.IsHoliday(ctx, dateutil.Date(2024, time.May, 1))
	require.NoError(t, err)
	assert.True(t, got, "Fiesta del Trabajo")
	assert.Len(t, repo.byDate, 14, "membership check seeds the year")

	got, err = svc.IsHoliday(ctx, dateutil.Date(2024, time.May, 3))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHolidaysInRange_SpansYears(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)
	ctx := context.Background()

	// Dec 2024 .. Jan 2025 touches both years.
	got, err := svc.HolidaysInRange(ctx,
		dateutil.Date(2024, time.December, 1),
		dateutil.Date(2025, time.January, 31),
	)
	require.NoError(t, err)
	assert.Len(t, repo.byDate, 28, "both years seeded")

	var names []string
	for _, h := range got {
		names = append(names, h.Name)
	}
	// Dec 6, 8, 25 of 2024 and Jan 1, 6 of 2025.
	assert.Equal(t, []string{
		"Día de la Constitución",
		"Inmaculada Concepción",
		"Navidad",
		"Año Nuevo",
		"Epifanía del Señor (Reyes)",
	}, names)

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Date.Before(got[i].Date), "sorted ascending")
	}
}

func TestHolidaysInMonth(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)

	got, err := svc.HolidaysInMonth(context.Background(), 2024, time.May)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Fiesta del Trabajo", got[0].Name)
	assert.Equal(t, "Fiesta de la Comunidad de Madrid", got[1].Name)
	assert.Equal(t, "San Isidro", got[2].Name)
}

func TestHolidaysInYear(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)

	got, err := svc.HolidaysInYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, got, 14)
}

func TestEnsureYearSeeded_InvalidYear(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())
	err := svc.EnsureYearSeeded(context.Background(), 1500)
	assert.ErrorIs(t, err, holiday.ErrInvalidYear)
}
