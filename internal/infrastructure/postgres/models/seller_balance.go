package models

import "time"

// SellerBalanceModel is the aggregate balance counter per seller: credited on
// release, debited on refund-after-release, always in the same transaction as
// the escrow transition that caused the change.
type SellerBalanceModel struct {
	SellerID  string `gorm:"primaryKey"`
	Balance   float64
	Currency  string
	UpdatedAt time.Time
}

func (SellerBalanceModel) TableName() string {
	return "seller_balances"
}
