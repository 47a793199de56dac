package reviewdto

import (
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
)

type ReviewOutput struct {
	ReviewID string	`json:"review_id"`
	OrderID  string	`json:"order_id"`
	SellerID string	`json:"seller_id"`
	BuyerID  string	`json:"buyer_id"`
	Rating 	 int	`json:"rating"`
	Comment  string	`json:"comment,omitempty"`
	VerifiedPurchase bool 	   `json:"verified_purchase"`
	HelpfulCount 	 int 	   `json:"helpful_count"`
	Reported 		 bool 	   `json:"reported"`
	CreatedAt 		 time.Time `json:"created_at"`
}

type ListReviewsOutput struct {
	Reviews  []*ReviewOutput `json:"reviews"`
	Total 	 int64 			 `json:"total"`
	Page 	 int 			 `json:"page"`
	PageSize int 			 `json:"page_size"`
}

func ToReviewOutput(review *domain.Review) *ReviewOutput {
	return &ReviewOutput{
		ReviewID: review.ID,
		OrderID: review.OrderID,
		SellerID: review.SellerID,
		BuyerID: review.BuyerID,
		Rating: review.Rating,
		Comment: review.Comment,
		VerifiedPurchase: review.VerifiedPurchase,
		HelpfulCount: review.HelpfulCount,
		Reported: review.Reported,
		CreatedAt: review.CreatedAt,
	}
}
