package domain

import (
	"math"
	"time"
)

// Fixed scoring policy. Weights sum to 1.0 and are not configurable per call.
const (
	WeightRating 	   = 0.30
	WeightCompletion   = 0.25
	WeightResponse 	   = 0.15
	WeightDispute 	   = 0.20
	WeightVerification = 0.10

	// Neutral defaults so that new sellers and missing signal sources are
	// not penalized.
	NeutralRating 	   = 0.5
	NeutralCompletion  = 0.5
	NeutralResponse    = 0.5
)

type TrustScore struct {
	SellerID   string
	Value 	   float64
	ComputedAt time.Time
	// Stale is raised when a contributing event lands after ComputedAt.
	Stale bool
}

// TrustSignals are the five component signals, each already normalized to [0,1].
type TrustSignals struct {
	AverageRating  float64
	CompletionRate float64
	ResponseScore  float64
	DisputeRate    float64
	Verification   float64
}

// CompositeScore folds the signals into the weighted score. Pure function:
// concurrent recomputes race harmlessly to the same result.
func CompositeScore(s TrustSignals) float64 {
	score := WeightRating*s.AverageRating +
		WeightCompletion*s.CompletionRate +
		WeightResponse*s.ResponseScore +
		WeightDispute*(1-s.DisputeRate) +
		WeightVerification*s.Verification

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}

type TrustScoreRepository interface {
	GetTrustScore(sellerID string) (*TrustScore, error)
	SaveTrustScore(score *TrustScore) error
	MarkStale(sellerID string) error
}
