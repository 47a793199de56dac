package escrow

import (
	"context"

	"github.com/peertrade/escrow-service/internal/domain"
)

// Refund returns the funds to the buyer. Valid from FUNDED (buyer-initiated
// refund before any dispute) and from DISPUTED (resolution path).
func (uc *DefaultUsecase) Refund(ctx context.Context, escrowID, reason string) (*domain.Escrow, error) {
	uc.locks.lock(escrowID)
	defer uc.locks.unlock(escrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}

	return uc.refundLocked(ctx, escrow)
}
