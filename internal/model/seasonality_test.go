package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonalityBounds(t *testing.T) {
	table := DefaultSeasonTable()
	d := day(2025, time.January, 1)
	for i := 0; i < 365; i++ {
		s := Seasonality(d, table)
		if s < 0 || s > 1 {
			t.Errorf("score out of [0,1] on %s: %f", d.Format("2006-01-02"), s)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestSeasonalityPeaksDominateQuietDays(t *testing.T) {
	table := DefaultSeasonTable()
	quiet := Seasonality(day(2025, time.June, 20), table)
	if quiet != 0 {
		t.Errorf("expected 0 on a quiet June day, got %f", quiet)
	}

	peaks := []time.Time{
		day(2025, time.February, 14),
		day(2025, time.March, 8),
		day(2025, time.November, 20),
		secondSunday(2025, time.May),
	}
	for _, p := range peaks {
		if s := Seasonality(p, table); s <= quiet {
			t.Errorf("peak %s not above quiet day: %f", p.Format("2006-01-02"), s)
		}
	}
}

func TestSeasonalityTetWindow(t *testing.T) {
	table := DefaultSeasonTable()

	// Tet 2025 falls on Jan 29: primary weight plus the wedding-season
	// bonus for January.
	s := Seasonality(day(2025, time.January, 29), table)
	if s != 0.5 {
		t.Errorf("expected 0.5 on Tet 2025, got %f", s)
	}

	// Well outside the window.
	if s := Seasonality(day(2025, time.April, 10), table); s != 0 {
		t.Errorf("expected 0 in mid-April, got %f", s)
	}
}

func TestSeasonalityTetFallbackWindow(t *testing.T) {
	table := DefaultSeasonTable()
	// 2040 is outside the lunar-new-year table; the fixed Jan 20 - Feb 15
	// approximation applies.
	s := Seasonality(day(2040, time.February, 1), table)
	if s < 0.35 {
		t.Errorf("expected fallback window to contribute, got %f", s)
	}
}

func TestSecondSunday(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2024, 12},
		{2025, 11},
		{2026, 10},
		{2027, 9},
	}
	for _, c := range cases {
		got := secondSunday(c.year, time.May)
		if got.Day() != c.want {
			t.Errorf("second Sunday of May %d: expected day %d, got %d", c.year, c.want, got.Day())
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("second Sunday of May %d is a %s", c.year, got.Weekday())
		}
	}
}

func TestSeasonalityCapped(t *testing.T) {
	table := SeasonTable{
		PrimaryWeight: 0.9,
		Bumps: []SeasonBump{
			{Name: "stacked", Month: 2, Day: 1, WindowDays: 10, Weight: 0.9},
		},
		SeasonMonths: []time.Month{time.February},
		SeasonWeight: 0.9,
	}
	if s := Seasonality(day(2025, time.February, 1), table); s != 1 {
		t.Errorf("expected cap at 1.0, got %f", s)
	}
}
