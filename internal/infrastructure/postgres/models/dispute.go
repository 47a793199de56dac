package models

import "time"

type DisputeModel struct {
	ID 		   string `gorm:"primaryKey"`
	EscrowID   string `gorm:"uniqueIndex;not null"`
	OpenedBy   string
	Reason 	   string
	Resolution string
	Escrow 	   EscrowModel `gorm:"foreignKey:EscrowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	OpenedAt   time.Time
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DisputeModel) TableName() string {
	return "disputes"
}
