package escrow

import (
	"context"

	"github.com/peertrade/escrow-service/internal/domain"
)

// ConfirmDelivery is the buyer-driven release path: confirmation immediately
// releases the funds, no secondary countdown.
func (uc *DefaultUsecase) ConfirmDelivery(ctx context.Context, escrowID, actorID string) (*domain.Escrow, error) {
	uc.locks.lock(escrowID)
	defer uc.locks.unlock(escrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}
	if escrow.State != domain.EscrowFunded {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}
	if escrow.ReleaseConditions.RequiresBuyerConfirmation && actorID != escrow.BuyerID {
		return nil, domain.ErrUnauthorized
	}

	confirmedAt := uc.Clock()
	return uc.releaseLocked(escrow, &confirmedAt, "confirmation")
}
