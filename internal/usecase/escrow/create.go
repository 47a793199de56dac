package escrow

import (
	"github.com/google/uuid"
	"github.com/peertrade/escrow-service/internal/domain"
	escrowdto "github.com/peertrade/escrow-service/internal/usecase/dto/escrow"
)

// CreateEscrow opens custody for an order. Exactly one escrow may exist per
// order; the unique constraint on order_id backs the duplicate check.
func (uc *DefaultUsecase) CreateEscrow(input *escrowdto.CreateEscrowInput) (*domain.Escrow, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if input.AutoReleaseAfterDays < 0 {
		return nil, domain.ErrInvalidAmount
	}

	escrow := &domain.Escrow{
		ID: uuid.New().String(),
		OrderID: input.OrderID,
		BuyerID: input.BuyerID,
		SellerID: input.SellerID,
		Amount: input.Amount,
		Currency: input.Currency,
		State: domain.EscrowCreated,
		ReleaseConditions: domain.ReleaseConditions{
			AutoReleaseAfterDays: input.AutoReleaseAfterDays,
			RequiresBuyerConfirmation: input.RequiresBuyerConfirmation,
		},
		CreatedAt: uc.Clock(),
	}

	if err := uc.EscrowRepo.CreateEscrow(escrow); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowCreated(escrow.Currency)
	}

	return escrow, nil
}
