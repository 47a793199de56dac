package escrow

import (
	"context"

	"github.com/peertrade/escrow-service/internal/domain"
)

// Cancel tears down an escrow that was never funded. Not an abort of an
// in-flight call: a distinct terminal transition from CREATED only.
func (uc *DefaultUsecase) Cancel(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	uc.locks.lock(escrowID)
	defer uc.locks.unlock(escrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}
	if !escrow.CanTransition(domain.EscrowCancelled) {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}

	escrow.State = domain.EscrowCancelled
	if err := uc.EscrowRepo.SaveTransition(escrow, []domain.EscrowState{domain.EscrowCreated}, 0); err != nil {
		return nil, err
	}

	return escrow, nil
}
