package models

import "time"

type ReviewModel struct {
	ID 		 string `gorm:"primaryKey"`
	OrderID  string `gorm:"uniqueIndex;not null"`
	SellerID string `gorm:"index"`
	BuyerID  string `gorm:"index"`
	Rating 	 int
	Comment  string
	VerifiedPurchase bool
	HelpfulCount 	 int
	Reported 		 bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}
