package kafka

// Event types emitted by the core. Delivery to chat/email/push is entirely
// the consumer's concern.
const (
	EventEscrowFunded 	   = "ESCROW_FUNDED"
	EventEscrowReleased    = "ESCROW_RELEASED"
	EventEscrowRefunded    = "ESCROW_REFUNDED"
	EventDisputeOpened 	   = "DISPUTE_OPENED"
	EventReviewAdded 	   = "REVIEW_ADDED"
	EventTrustScoreUpdated = "TRUST_SCORE_UPDATED"
)

type EscrowEvent struct {
	EventType string	`json:"event_type"`
	EscrowID  string	`json:"escrow_id"`
	OrderID   string	`json:"order_id"`
	BuyerID   string	`json:"buyer_id"`
	SellerID  string	`json:"seller_id"`
	State 	  string	`json:"state"`
	Amount 	  float64	`json:"amount"`
	Currency  string	`json:"currency"`
}

type ReviewEvent struct {
	EventType string	`json:"event_type"`
	ReviewID  string	`json:"review_id"`
	OrderID   string	`json:"order_id"`
	SellerID  string	`json:"seller_id"`
	Rating 	  int		`json:"rating"`
}

type TrustEvent struct {
	EventType string	`json:"event_type"`
	SellerID  string	`json:"seller_id"`
	Value 	  float64	`json:"value"`
}
