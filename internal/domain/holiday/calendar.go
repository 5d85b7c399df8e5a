package holiday

import (
	"sort"
	"time"

	"github.com/teleworkapp/telework-backend-go/internal/pkg/dateutil"
)

// The Computus below is only defined for the Gregorian calendar.
const (
	MinYear = 1583
	MaxYear = 4099
)

type fixedHoliday struct {
	month    time.Month
	day      int
	name     string
	category Category
}

// Fixed-date holidays for the Madrid jurisdiction. Names stay in Spanish,
// these are Spanish-specific holidays.
var madridFixedHolidays = []fixedHoliday{
	// National
	{time.January, 1, "Año Nuevo", CategoryNational},
	{time.January, 6, "Epifanía del Señor (Reyes)", CategoryNational},
	{time.May, 1, "Fiesta del Trabajo", CategoryNational},
	{time.August, 15, "Asunción de la Virgen", CategoryNational},
	{time.October, 12, "Fiesta Nacional de España", CategoryNational},
	{time.November, 1, "Todos los Santos", CategoryNational},
	{time.December, 6, "Día de la Constitución", CategoryNational},
	{time.December, 8, "Inmaculada Concepción", CategoryNational},
	{time.December, 25, "Navidad", CategoryNational},

	// Regional (Community of Madrid)
	{time.May, 2, "Fiesta de la Comunidad de Madrid", CategoryRegional},

	// Local (Madrid city)
	{time.May, 15, "San Isidro", CategoryLocal},
	{time.November, 9, "Virgen de la Almudena", CategoryLocal},
}

// EasterSunday computes the date of Easter Sunday for a Gregorian year using
// the Computus algorithm. Integer arithmetic only.
func EasterSunday(year int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, ErrInvalidYear
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return dateutil.Date(year, time.Month(month), day), nil
}

// MadridHolidays returns the full holiday calendar for a year: the twelve
// fixed dates plus Maundy Thursday and Good Friday derived from Easter.
// Sorted by date ascending.
func MadridHolidays(year int) ([]Holiday, error) {
	easter, err := EasterSunday(year)
	if err != nil {
		return nil, err
	}

	holidays := make([]Holiday, 0, len(madridFixedHolidays)+2)
	for _, f := range madridFixedHolidays {
		holidays = append(holidays, Holiday{
			Date:     dateutil.Date(year, f.month, f.day),
			Name:     f.name,
			Category: f.category,
		})
	}

	holidays = append(holidays,
		Holiday{Date: easter.AddDate(0, 0, -3), Name: "Jueves Santo", Category: CategoryNational},
		Holiday{Date: easter.AddDate(0, 0, -2), Name: "Viernes Santo", Category: CategoryNational},
	)

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return holidays, nil
}
