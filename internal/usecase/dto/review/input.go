package reviewdto

type AddReviewInput struct {
	BuyerID string
	OrderID string
	Rating 	int
	Comment string
}

type ListReviewsInput struct {
	SellerID string
	Page 	 int
	PageSize int
}
