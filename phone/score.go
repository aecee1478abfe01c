package phone

import "math"

// The confidence weights. A plan-valid number carries most of the weight, carrier and country resolution are
// informational extras. Invalid numbers score zero, there's no partial credit for "almost parsed".
const (
	weightValid   = 0.7
	weightCarrier = 0.15
	weightCountry = 0.15
)

// Score derives the confidence score from a Result. Always within [0, 1], rounded to two decimals.
func Score(r Result) float64 {
	if !r.Valid {
		return 0.0
	}

	score := weightValid
	if r.Carrier != "" {
		score += weightCarrier
	}
	if r.Country != "" {
		score += weightCountry
	}

	if score > 1 {
		score = 1
	}

	return math.Round(score*100) / 100
}
