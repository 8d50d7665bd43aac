// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/taste"
)

// ContextRule multiplies the score of tracks whose feature is strictly
// above (or below) a threshold, when the context matches. An empty
// TimeOfDay or Weather matches any value.
type ContextRule struct {
	TimeOfDay  models.TimeOfDay
	Weather    models.Weather
	Feature    string
	Above      bool
	Threshold  float64
	Multiplier float64
}

// DefaultRules is the context re-weighting table.
var DefaultRules = []ContextRule{
	{TimeOfDay: models.Morning, Feature: taste.FeatureEnergy, Above: true, Threshold: 0.7, Multiplier: 1.2},
	{TimeOfDay: models.Morning, Feature: taste.FeatureAcousticness, Above: true, Threshold: 0.6, Multiplier: 1.1},
	{TimeOfDay: models.Night, Feature: taste.FeatureEnergy, Above: false, Threshold: 0.6, Multiplier: 1.2},
	{TimeOfDay: models.Night, Feature: taste.FeatureValence, Above: false, Threshold: 0.5, Multiplier: 1.1},
	{Weather: models.Rainy, Feature: taste.FeatureAcousticness, Above: true, Threshold: 0.5, Multiplier: 1.2},
	{Weather: models.Rainy, Feature: taste.FeatureValence, Above: false, Threshold: 0.4, Multiplier: 1.3},
	{Weather: models.Sunny, Feature: taste.FeatureValence, Above: true, Threshold: 0.6, Multiplier: 1.2},
	{Weather: models.Sunny, Feature: taste.FeatureEnergy, Above: true, Threshold: 0.6, Multiplier: 1.1},
}

func (r *ContextRule) applies(ctx models.ListeningContext, features taste.Vector) bool {
	if r.TimeOfDay != "" && r.TimeOfDay != ctx.TimeOfDay {
		return false
	}
	if r.Weather != "" && r.Weather != ctx.Weather {
		return false
	}
	v, ok := features[r.Feature]
	if !ok {
		return false
	}
	if r.Above {
		return v > r.Threshold
	}
	return v < r.Threshold
}

// ContextMultiplier is the product of the multipliers of every rule that
// applies. It is 1 when none does.
func ContextMultiplier(rules []ContextRule, ctx models.ListeningContext, f *models.AudioFeatures) float64 {
	features := taste.FeatureVector(f)
	m := 1.0
	for i := range rules {
		if rules[i].applies(ctx, features) {
			m *= rules[i].Multiplier
		}
	}
	return m
}
