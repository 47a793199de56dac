package escrowdto

import (
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
)

type EscrowOutput struct {
	EscrowID string	 `json:"escrow_id"`
	OrderID  string	 `json:"order_id"`
	BuyerID  string	 `json:"buyer_id"`
	SellerID string	 `json:"seller_id"`
	Amount   float64 `json:"amount"`
	Currency string	 `json:"currency"`
	State 	 string	 `json:"state"`

	AutoReleaseAfterDays 	  int  	`json:"auto_release_after_days"`
	RequiresBuyerConfirmation bool 	`json:"requires_buyer_confirmation"`
	GatewayPaymentID 		  string `json:"gateway_payment_id,omitempty"`

	FundedAt 			*time.Time `json:"funded_at,omitempty"`
	DeliveryConfirmedAt *time.Time `json:"delivery_confirmed_at,omitempty"`
	DisputedAt 			*time.Time `json:"disputed_at,omitempty"`
	ResolvedAt 			*time.Time `json:"resolved_at,omitempty"`
	CreatedAt 			time.Time  `json:"created_at"`
}

func ToEscrowOutput(escrow *domain.Escrow) *EscrowOutput {
	return &EscrowOutput{
		EscrowID: escrow.ID,
		OrderID: escrow.OrderID,
		BuyerID: escrow.BuyerID,
		SellerID: escrow.SellerID,
		Amount: escrow.Amount,
		Currency: escrow.Currency,
		State: string(escrow.State),
		AutoReleaseAfterDays: escrow.ReleaseConditions.AutoReleaseAfterDays,
		RequiresBuyerConfirmation: escrow.ReleaseConditions.RequiresBuyerConfirmation,
		GatewayPaymentID: escrow.GatewayPaymentID,
		FundedAt: escrow.FundedAt,
		DeliveryConfirmedAt: escrow.DeliveryConfirmedAt,
		DisputedAt: escrow.DisputedAt,
		ResolvedAt: escrow.ResolvedAt,
		CreatedAt: escrow.CreatedAt,
	}
}
