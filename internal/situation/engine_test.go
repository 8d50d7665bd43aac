// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package situation

import (
	"testing"
	"time"

	"github.com/tomtom215/cadence/internal/models"
)

func TestTimeOfDayBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want models.TimeOfDay
	}{
		{0, models.Night},
		{4, models.Night},
		{5, models.Morning},
		{11, models.Morning},
		{12, models.Afternoon},
		{16, models.Afternoon},
		{17, models.Evening},
		{21, models.Evening},
		{22, models.Night},
		{23, models.Night},
	}

	for _, tt := range tests {
		if got := TimeOfDay(tt.hour); got != tt.want {
			t.Errorf("TimeOfDay(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestWeatherStableWithinHour(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	want := WeatherAt(base)
	for _, offset := range []time.Duration{time.Minute, 17 * time.Minute, 59*time.Minute + 59*time.Second} {
		if got := WeatherAt(base.Add(offset)); got != want {
			t.Errorf("weather changed within the hour at +%v: %s != %s", offset, got, want)
		}
	}
}

func TestWeatherVariesAcrossDay(t *testing.T) {
	t.Parallel()

	seen := make(map[models.Weather]bool)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24*7; h++ {
		seen[WeatherAt(day.Add(time.Duration(h)*time.Hour))] = true
	}
	if len(seen) < 2 {
		t.Errorf("weather never changes over a week: %v", seen)
	}
}

func TestActivityAt(t *testing.T) {
	t.Parallel()

	tests := map[int]models.Activity{
		3:  models.ActivitySleeping,
		7:  models.ActivityCommuting,
		10: models.ActivityWorking,
		12: models.ActivityRelaxing,
		14: models.ActivityWorking,
		18: models.ActivityWorkout,
		20: models.ActivityRelaxing,
		23: models.ActivitySleeping,
	}
	for hour, want := range tests {
		if got := ActivityAt(hour); got != want {
			t.Errorf("ActivityAt(%d) = %s, want %s", hour, got, want)
		}
	}
}

func TestEngineUsesClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 6, 1, 7, 30, 0, 0, time.UTC)
	e := NewEngine().WithClock(func() time.Time { return fixed })

	ctx := e.Current()
	if ctx.TimeOfDay != models.Morning || ctx.Activity != models.ActivityCommuting {
		t.Errorf("Current() = %+v", ctx)
	}
	if ctx != At(fixed) {
		t.Error("Current() differs from At(now)")
	}
}
