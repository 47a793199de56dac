package trustdto

import (
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
)

type TrustScoreOutput struct {
	SellerID   string 	 `json:"seller_id"`
	Value 	   float64 	 `json:"value"`
	ComputedAt time.Time `json:"computed_at"`
}

func ToTrustScoreOutput(score *domain.TrustScore) *TrustScoreOutput {
	return &TrustScoreOutput{
		SellerID: score.SellerID,
		Value: score.Value,
		ComputedAt: score.ComputedAt,
	}
}
