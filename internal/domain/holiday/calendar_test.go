package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

func TestEasterSunday_ReferenceYears(t *testing.T) {
	cases := []struct {
		year int
		want string
	}{
		{1583, "1583-04-10"}, // first year of the supported range
		{1818, "1818-03-22"}, // earliest possible Easter
		{2000, "2000-04-23"},
		{2008, "2008-03-23"},
		{2011, "2011-04-24"},
		{2016, "2016-03-27"},
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2026, "2026-04-05"},
		{2038, "2038-04-25"}, // latest possible Easter
	}
	for _, c := range cases {
		got, err := EasterSunday(c.year)
		require.NoError(t, err, "year %d", c.year)
		assert.Equal(t, c.want, dateutil.Format(got), "Easter Sunday of %d", c.year)
	}
}

func TestEasterSunday_OutOfRange(t *testing.T) {
	for _, year := range []int{1582, 4100, 0, -33} {
		_, err := EasterSunday(year)
		assert.ErrorIs(t, err, ErrInvalidYear, "year %d", year)
	}
}

func TestMadridHolidays_CountAndDistinctDates(t *testing.T) {
	// Sample the whole supported range, plus both endpoints.
	years := []int{MinYear, MaxYear}
	for y := 1600; y <= 4000; y += 100 {
		years = append(years, y)
	}
	years = append(years, 2023, 2024, 2025)

	for _, year := range years {
		holidays, err := MadridHolidays(year)
		require.NoError(t, err, "year %d", year)
		require.Len(t, holidays, 14, "year %d: 12 fixed + 2 movable", year)

		seen := make(map[string]struct{}, len(holidays))
		for _, h := range holidays {
			assert.Equal(t, year, h.Date.Year())
			assert.Contains(t, CategoryValues, string(h.Category))
			key := dateutil.Format(h.Date)
			_, dup := seen[key]
			assert.False(t, dup, "year %d: duplicate holiday date %s", year, key)
			seen[key] = struct{}{}
		}

		for i := 1; i < len(holidays); i++ {
			assert.True(t, holidays[i-1].Date.Before(holidays[i].Date),
				"year %d: holidays not sorted ascending", year)
		}
	}
}

func TestMadridHolidays_EasterDerivedDates2024(t *testing.T) {
	holidays, err := MadridHolidays(2024)
	require.NoError(t, err)

	byName := make(map[string]Holiday)
	for _, h := range holidays {
		byName[h.Name] = h
	}

	jueves, ok := byName["Jueves Santo"]
	require.True(t, ok)
	assert.Equal(t, "2024-03-28", dateutil.Format(jueves.Date))
	assert.Equal(t, CategoryNational, jueves.Category)

	viernes, ok := byName["Viernes Santo"]
	require.True(t, ok)
	assert.Equal(t, "2024-03-29", dateutil.Format(viernes.Date))
	assert.Equal(t, CategoryNational, viernes.Category)
}

func TestMadridHolidays_FixedDates(t *testing.T) {
	holidays, err := MadridHolidays(2025)
	require.NoError(t, err)

	byDate := make(map[string]Holiday)
	for _, h := range holidays {
		byDate[dateutil.Format(h.Date)] = h
	}

	cases := []struct {
		date     string
		name     string
		category Category
	}{
		{"2025-01-01", "Año Nuevo", CategoryNational},
		{"2025-01-06", "Epifanía del Señor (Reyes)", CategoryNational},
		{"2025-05-01", "Fiesta del Trabajo", CategoryNational},
		{"2025-05-02", "Fiesta de la Comunidad de Madrid", CategoryRegional},
		{"2025-05-15", "San Isidro", CategoryLocal},
		{"2025-08-15", "Asunción de la Virgen", CategoryNational},
		{"2025-10-12", "Fiesta Nacional de España", CategoryNational},
		{"2025-11-01", "Todos los Santos", CategoryNational},
		{"2025-11-09", "Virgen de la Almudena", CategoryLocal},
		{"2025-12-06", "Día de la Constitución", CategoryNational},
		{"2025-12-08", "Inmaculada Concepción", CategoryNational},
		{"2025-12-25", "Navidad", CategoryNational},
	}
	for _, c := range cases {
		h, ok := byDate[c.date]
		require.True(t, ok, "missing holiday on %s", c.date)
		assert.Equal(t, c.name, h.Name)
		assert.Equal(t, c.category, h.Category)
	}

	// 2025 Easter Sunday is April 20.
	assert.Equal(t, "Jueves Santo", byDate["2025-04-17"].Name)
	assert.Equal(t, "Viernes Santo", byDate["2025-04-18"].Name)
}

func TestMadridHolidays_MovableNeverCollidesWithFixed(t *testing.T) {
	// Easter falls between March 22 and April 25; the fixed Madrid dates are
	// all outside March and April, so every year must have 14 distinct dates.
	for year := MinYear; year <= MaxYear; year += 7 {
		easter, err := EasterSunday(year)
		require.NoError(t, err)
		month := easter.Month()
		assert.True(t, month == time.March || month == time.April,
			"year %d: Easter in %s", year, month)
	}
}
