package models

import "time"

type TrustScoreModel struct {
	SellerID   string `gorm:"primaryKey"`
	Value 	   float64
	Stale 	   bool
	ComputedAt time.Time
	UpdatedAt  time.Time
}

func (TrustScoreModel) TableName() string {
	return "trust_scores"
}
