// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package taste

import (
	"math"

	"github.com/tomtom215/cadence/internal/models"
)

// Feature vector keys.
const (
	FeatureEnergy       = "energy"
	FeatureValence      = "valence"
	FeatureDanceability = "danceability"
	FeatureAcousticness = "acousticness"
)

// missingFeature is used for tracks without audio features.
const missingFeature = 0.5

// Vector is a sparse feature vector keyed by feature name.
type Vector map[string]float64

// FeatureVector projects audio features onto the four taste axes.
// Nil features yield nil.
func FeatureVector(f *models.AudioFeatures) Vector {
	if f == nil {
		return nil
	}
	return Vector{
		FeatureEnergy:       f.Energy,
		FeatureValence:      f.Valence,
		FeatureDanceability: f.Danceability,
		FeatureAcousticness: f.Acousticness,
	}
}

// CosineSimilarity is the dot product over keys present in both vectors
// divided by the product of the full magnitudes. Returns 0 when either
// magnitude is 0.
func CosineSimilarity(a, b Vector) float64 {
	var dot float64
	for k, av := range a {
		if bv, ok := b[k]; ok {
			dot += av * bv
		}
	}

	magA, magB := magnitude(a), magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}

func magnitude(v Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
