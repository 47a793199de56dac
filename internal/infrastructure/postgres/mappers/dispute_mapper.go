package mappers

import (
	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID: model.ID,
		EscrowID: model.EscrowID,
		OpenedBy: model.OpenedBy,
		Reason: model.Reason,
		Resolution: domain.DisputeResolution(model.Resolution),
		OpenedAt: model.OpenedAt,
		ResolvedAt: model.ResolvedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID: dispute.ID,
		EscrowID: dispute.EscrowID,
		OpenedBy: dispute.OpenedBy,
		Reason: dispute.Reason,
		Resolution: string(dispute.Resolution),
		OpenedAt: dispute.OpenedAt,
		ResolvedAt: dispute.ResolvedAt,
	}
}
