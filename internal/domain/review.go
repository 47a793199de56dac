package domain

import "time"

type Review struct {
	ID 		 string
	OrderID  string
	SellerID string
	BuyerID  string
	Rating 	 int
	Comment  string
	// Always true: a review can only be created for a RELEASED escrow.
	VerifiedPurchase bool
	HelpfulCount 	 int
	Reported 		 bool
	CreatedAt 		 time.Time
}

type RatingStats struct {
	Count 	int64
	Average float64
}

type ReviewRepository interface {
	CreateReview(review *Review) error
	GetReviewByOrderID(orderID string) (*Review, error)
	ListReviewsBySeller(sellerID string, page, pageSize int) ([]*Review, int64, error)
	SellerRatingStats(sellerID string) (*RatingStats, error)
	IncrementHelpful(reviewID string) error
	MarkReported(reviewID string) error
}
