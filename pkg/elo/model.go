package elo

import "math"

// ExpectedScores returns the logistic expected score of each side given the
// two sides' average ratings. The pair always sums to 1.
func ExpectedScores(avgA, avgB float64) (expectedA, expectedB float64) {
	expectedA = 1.0 / (1.0 + math.Pow(10, (avgB-avgA)/ratingScale))
	return expectedA, 1.0 - expectedA
}

// Params are the tunables of the margin/upset multiplier.
type Params struct {
	MaxMultiplier float64 // cap factor reached at a margin of MarginScale
	MarginPower   float64 // convexity of the margin curve
	UpsetScale    float64 // weight of the upset bonus
	MarginScale   float64 // goal margin normalisation
}

// DefaultParams is the multiplier configuration used by ComputeRatings.
var DefaultParams = Params{
	MaxMultiplier: 3.0,
	MarginPower:   1.5,
	UpsetScale:    0.5,
	MarginScale:   15,
}

// Multiplier scales a match's rating delta by goal margin, with an extra bonus
// when the lower rated side wins. Draws (margin 0) always return 1.
func (p Params) Multiplier(winnerRating, loserRating float64, margin int) float64 {
	if margin <= 0 {
		return 1.0
	}

	normalized := float64(margin) / p.MarginScale
	factor := 1 + (p.MaxMultiplier-1)*math.Pow(normalized, p.MarginPower)

	bonus := 1.0
	if winnerRating < loserRating {
		bonus = 1 + p.UpsetScale*((loserRating-winnerRating)/ratingScale)*normalized
	}

	return factor * bonus
}
