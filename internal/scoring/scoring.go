// Package scoring computes personalized course scores from a rating's
// per-dimension scores and a user profile's weights.
package scoring

import (
	"math"

	"github.com/alexschwind/ratemycourses/internal/models"
)

// Compute returns the weighted average of a rating's dimension scores under
// the given weights, rounded to two decimals, or nil when no dimension
// carries weight.
//
// Dimensions are normalized to the 1-5 scale before averaging. Nine
// dimensions already are 1-5; practical_theoretical stores a 0-100 balance
// and is scored by closeness to practicalPreference: a perfect match counts
// as 5, the opposite end of the scale as 1.
//
// Dimensions missing from scores are skipped. Dimensions missing from
// weights count with models.DefaultWeight. Score keys outside the known
// dimension set are ignored. Rounding is half away from zero.
func Compute(weights map[models.Dimension]int, practicalPreference int, scores map[models.Dimension]int) *float64 {
	var weightedSum, totalWeight float64

	for _, d := range models.AllDimensions() {
		score, ok := scores[d]
		if !ok {
			continue
		}

		weight, ok := weights[d]
		if !ok {
			weight = models.DefaultWeight
		}
		if weight <= 0 {
			continue
		}

		normalized := float64(score)
		if d == models.DimensionPracticalTheoretical {
			normalized = normalizeBalance(score, practicalPreference)
		}

		weightedSum += float64(weight) * normalized
		totalWeight += float64(weight)
	}

	if totalWeight == 0 {
		return nil
	}

	result := Round2(weightedSum / totalWeight)
	return &result
}

// Mean averages the non-nil values, rounded to two decimals, or returns nil
// when none are present.
func Mean(values []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	m := Round2(sum / float64(n))
	return &m
}

// normalizeBalance maps a 0-100 practical/theoretical balance onto the 1-5
// scale by how closely it matches the user's preferred balance.
func normalizeBalance(balance, preference int) float64 {
	distance := balance - preference
	if distance < 0 {
		distance = -distance
	}
	alignment := 1 - float64(distance)/100
	return alignment*4 + 1
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
