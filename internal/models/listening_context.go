// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

// TimeOfDay buckets the wall-clock hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

// Weather is the simulated weather axis.
type Weather string

const (
	Sunny  Weather = "Sunny"
	Rainy  Weather = "Rainy"
	Cloudy Weather = "Cloudy"
	Snowy  Weather = "Snowy"
)

// Activity is the simulated listener activity.
type Activity string

const (
	ActivityCommuting Activity = "Commuting"
	ActivityWorking   Activity = "Working"
	ActivityWorkout   Activity = "Workout"
	ActivityRelaxing  Activity = "Relaxing"
	ActivitySleeping  Activity = "Sleeping"
)

// ListeningContext is recomputed per request and never persisted.
type ListeningContext struct {
	TimeOfDay TimeOfDay `json:"time_of_day"`
	Weather   Weather   `json:"weather"`
	Activity  Activity  `json:"activity"`
}
