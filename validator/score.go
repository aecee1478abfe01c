package validator

import "math"

// The confidence weights. The exact values are a product decision, the constraints are that the score is monotonic
// in positive signals and lands in the documented bands: 1.0 for a fully confirmed provider address, 0.8-0.9 with
// everything but provider recognition, 0.6-0.7 when DNS or MX is missing and at most 0.5 for disposable addresses.
const (
	weightSyntax   = 0.4
	weightDomain   = 0.2
	weightMX       = 0.2
	weightClean    = 0.1
	weightProvider = 0.1

	// A confirmed disposable address never scores above this, whatever its DNS posture.
	disposableCeiling = 0.5
)

// Score derives the confidence score from the signals in a Result. Always within [0, 1], rounded to two decimals.
func Score(r Result) float64 {
	var score float64

	if r.SyntaxValid() {
		score += weightSyntax
	}
	if r.DomainExists() {
		score += weightDomain
	}
	if r.MXFound() {
		score += weightMX
	}
	if !r.Disposable() {
		score += weightClean
	}
	if r.Provider != "" {
		score += weightProvider
	}

	if r.Disposable() && score > disposableCeiling {
		score = disposableCeiling
	}

	return math.Round(clamp01(score)*100) / 100
}

// SyntaxFallbackScore is the score for input that failed the format check but still decomposes into local@domain,
// "looks email-shaped". Input that doesn't even split scores zero.
const SyntaxFallbackScore = 0.3

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
