package models

import "time"

type EscrowModel struct {
	ID 		 string `gorm:"primaryKey"`
	OrderID  string `gorm:"uniqueIndex;not null"`
	BuyerID  string `gorm:"index"`
	SellerID string `gorm:"index"`
	Amount   float64
	Currency string
	State 	 string `gorm:"index"`

	AutoReleaseAfterDays 	  int
	RequiresBuyerConfirmation bool
	GatewayPaymentID 		  string `gorm:"index"`

	FundedAt 			*time.Time
	DeliveryConfirmedAt *time.Time
	DisputedAt 			*time.Time
	ResolvedAt 			*time.Time
	// Precomputed FundedAt + window so the sweep query hits an index.
	AutoReleaseAt *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EscrowModel) TableName() string {
	return "escrows"
}
