// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package situation derives the listening context from the wall clock.
//
// Time of day is exact. Weather and activity are deterministic stand-ins
// for real signals: weather is a hash of the local date and hour, activity
// a fixed hour-band table. Both are stable for a given hour.
package situation

import (
	"hash/fnv"
	"time"

	"github.com/tomtom215/cadence/internal/models"
)

// Engine computes the current listening context.
type Engine struct {
	now func() time.Time
}

// NewEngine creates an engine reading the system clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// WithClock replaces the clock. Intended for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Current returns the context for the engine's current time.
func (e *Engine) Current() models.ListeningContext {
	return At(e.now())
}

// At returns the context for t, in t's location.
func At(t time.Time) models.ListeningContext {
	return models.ListeningContext{
		TimeOfDay: TimeOfDay(t.Hour()),
		Weather:   WeatherAt(t),
		Activity:  ActivityAt(t.Hour()),
	}
}

// TimeOfDay buckets an hour: Morning [5,12), Afternoon [12,17),
// Evening [17,22), Night otherwise.
func TimeOfDay(hour int) models.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return models.Morning
	case hour >= 12 && hour < 17:
		return models.Afternoon
	case hour >= 17 && hour < 22:
		return models.Evening
	default:
		return models.Night
	}
}

var weathers = [...]models.Weather{models.Sunny, models.Cloudy, models.Rainy, models.Snowy}

// WeatherAt hashes the local date and hour onto the weather set.
func WeatherAt(t time.Time) models.Weather {
	h := fnv.New32a()
	_, _ = h.Write([]byte(t.Format("2006-01-02T15")))
	return weathers[h.Sum32()%uint32(len(weathers))]
}

// activityBands maps [start hour, next band) to an activity.
var activityBands = []struct {
	start    int
	activity models.Activity
}{
	{0, models.ActivitySleeping},
	{6, models.ActivityCommuting},
	{9, models.ActivityWorking},
	{12, models.ActivityRelaxing},
	{13, models.ActivityWorking},
	{17, models.ActivityWorkout},
	{19, models.ActivityRelaxing},
	{23, models.ActivitySleeping},
}

// ActivityAt looks the hour up in the activity band table.
func ActivityAt(hour int) models.Activity {
	activity := models.ActivitySleeping
	for _, band := range activityBands {
		if hour < band.start {
			break
		}
		activity = band.activity
	}
	return activity
}
