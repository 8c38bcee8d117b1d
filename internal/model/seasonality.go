package model

import "time"

// SeasonTable is the peak-event calendar the seasonality score is computed
// from. The zero value is not useful; start from DefaultSeasonTable and
// override via configuration where the defaults don't fit the market.
type SeasonTable struct {
	// PrimaryWeight is the contribution of the lunar-new-year holiday
	// window, the single heaviest period for the flower trade.
	PrimaryWeight float64 `yaml:"primary_weight"`

	// Bumps are fixed-date events contributing Weight when the evaluated
	// date falls within +/- WindowDays of the event.
	Bumps []SeasonBump `yaml:"bumps"`

	// SeasonMonths get the flat SeasonWeight bonus (wedding season).
	SeasonMonths []time.Month `yaml:"season_months"`
	SeasonWeight float64      `yaml:"season_weight"`
}

type SeasonBump struct {
	Name       string  `yaml:"name"`
	Month      int     `yaml:"month"`
	Day        int     `yaml:"day"` // 0 means "second Sunday of Month"
	WindowDays int     `yaml:"window_days"`
	Weight     float64 `yaml:"weight"`
}

// DefaultSeasonTable is the Vietnamese flower-retail calendar: Tet,
// Valentine's Day, International Women's Day, Mother's Day, Teachers' Day,
// and the September-March wedding season.
func DefaultSeasonTable() SeasonTable {
	return SeasonTable{
		PrimaryWeight: 0.35,
		Bumps: []SeasonBump{
			{Name: "valentines", Month: 2, Day: 14, WindowDays: 5, Weight: 0.2},
			{Name: "womens_day", Month: 3, Day: 8, WindowDays: 5, Weight: 0.2},
			{Name: "mothers_day", Month: 5, Day: 0, WindowDays: 5, Weight: 0.15},
			{Name: "teachers_day", Month: 11, Day: 20, WindowDays: 5, Weight: 0.2},
		},
		SeasonMonths: []time.Month{
			time.September, time.October, time.November, time.December,
			time.January, time.February, time.March,
		},
		SeasonWeight: 0.15,
	}
}

// lunarNewYear holds the Gregorian date of Tet for years the service is
// expected to be queried about. Years outside the table fall back to the
// fixed late-January window below.
var lunarNewYear = map[int]struct{ month, day int }{
	2020: {1, 25}, 2021: {2, 12}, 2022: {2, 1}, 2023: {1, 22},
	2024: {2, 10}, 2025: {1, 29}, 2026: {2, 17}, 2027: {2, 6},
	2028: {1, 26}, 2029: {2, 13}, 2030: {2, 3},
}

const (
	tetDaysBefore = 10
	tetDaysAfter  = 15
)

// tetWindow returns the holiday window for the given year: centered on the
// lunar new year when known, otherwise the Jan 20 - Feb 15 approximation.
func tetWindow(year int) (time.Time, time.Time) {
	if lny, ok := lunarNewYear[year]; ok {
		center := time.Date(year, time.Month(lny.month), lny.day, 0, 0, 0, 0, time.UTC)
		return center.AddDate(0, 0, -tetDaysBefore), center.AddDate(0, 0, tetDaysAfter)
	}
	return time.Date(year, time.January, 20, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.February, 15, 0, 0, 0, 0, time.UTC)
}

// secondSunday computes the second Sunday of the month by weekday
// arithmetic, valid for any year.
func secondSunday(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Sunday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+7)
}

// Seasonality maps a calendar date to a demand intensity in [0,1] for the
// configured peak-event table. Pure function of the date: no I/O, no clock.
// Overlapping components sum and the total is capped at 1.
func Seasonality(day time.Time, table SeasonTable) float64 {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	yr := day.Year()

	score := 0.0

	start, end := tetWindow(yr)
	if !day.Before(start) && !day.After(end) {
		score += table.PrimaryWeight
	}

	for _, b := range table.Bumps {
		var peak time.Time
		if b.Day == 0 {
			peak = secondSunday(yr, time.Month(b.Month))
		} else {
			peak = time.Date(yr, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
		}
		days := int(day.Sub(peak).Hours() / 24)
		if days < 0 {
			days = -days
		}
		if days <= b.WindowDays {
			score += b.Weight
		}
	}

	for _, mo := range table.SeasonMonths {
		if day.Month() == mo {
			score += table.SeasonWeight
			break
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}
