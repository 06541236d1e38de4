// ABOUTME: Component scores for the weighted destination match model
// ABOUTME: Budget fit, interest overlap and popularity, each in [0,1]
package recommend

import (
	"math"
	"strings"
)

// Weights control the contribution of each component score to the total.
// They need not sum to 1, but should for the total to stay in [0,1].
type Weights struct {
	Budget     float64
	Interest   float64
	Popularity float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{Budget: 0.3, Interest: 0.6, Popularity: 0.1}
}

// budgetScore rates how well a destination's daily cost fits the user's
// daily budget. 1.0 at or under budget, linear decay down to 0.0 at double
// the budget, 0.0 beyond that.
func budgetScore(dailyBudget, avgCostPerDay float64) float64 {
	if avgCostPerDay <= dailyBudget {
		return 1.0
	}
	ratio := avgCostPerDay / dailyBudget
	if ratio > 2 {
		return 0.0
	}
	return math.Max(0, 1-(ratio-1))
}

// interestScore rates the overlap between user interests and destination
// categories. An interest matches when some category contains it as a
// case-insensitive substring. With no data on either side the score is a
// neutral 0.5; with data but no matches a 0.1 baseline keeps plausible
// destinations from being excluded outright.
func interestScore(interests, categories []string) float64 {
	if len(interests) == 0 || len(categories) == 0 {
		return 0.5
	}

	matches := 0
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		for _, category := range categories {
			if strings.Contains(strings.ToLower(category), needle) {
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 0.1
	}
	return math.Min(1.0, float64(matches)/float64(len(interests)))
}

// round2 rounds to two decimal places for display scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
