package mappers

import (
	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainEscrow(model *models.EscrowModel) *domain.Escrow {
	return &domain.Escrow{
		ID: model.ID,
		OrderID: model.OrderID,
		BuyerID: model.BuyerID,
		SellerID: model.SellerID,
		Amount: model.Amount,
		Currency: model.Currency,
		State: domain.EscrowState(model.State),
		ReleaseConditions: domain.ReleaseConditions{
			AutoReleaseAfterDays: model.AutoReleaseAfterDays,
			RequiresBuyerConfirmation: model.RequiresBuyerConfirmation,
		},
		GatewayPaymentID: model.GatewayPaymentID,
		FundedAt: model.FundedAt,
		DeliveryConfirmedAt: model.DeliveryConfirmedAt,
		DisputedAt: model.DisputedAt,
		ResolvedAt: model.ResolvedAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMEscrow(escrow *domain.Escrow) *models.EscrowModel {
	model := &models.EscrowModel{
		ID: escrow.ID,
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
		UpdatedAt: escrow.UpdatedAt,
	}
	if escrow.FundedAt != nil {
		autoReleaseAt := escrow.AutoReleaseAt()
		model.AutoReleaseAt = &autoReleaseAt
	}
	return model
}
