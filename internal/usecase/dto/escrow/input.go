package escrowdto

type CreateEscrowInput struct {
	OrderID  string
	BuyerID  string
	SellerID string
	Amount   float64
	Currency string
	AutoReleaseAfterDays 	  int
	RequiresBuyerConfirmation bool
}

type InitiatePaymentInput struct {
	EscrowID 	  string
	PaymentMethod string
}

type OpenDisputeInput struct {
	EscrowID string
	ActorID  string
	Reason 	 string
}
