package escrow

import (
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
)

func (uc *DefaultUsecase) GetEscrowByID(escrowID string) (*domain.Escrow, error) {
	return uc.EscrowRepo.GetEscrowByID(escrowID)
}

func (uc *DefaultUsecase) GetEscrowByOrderID(orderID string) (*domain.Escrow, error) {
	return uc.EscrowRepo.GetEscrowByOrderID(orderID)
}

func (uc *DefaultUsecase) GetDisputeByEscrowID(escrowID string) (*domain.Dispute, error) {
	return uc.DisputeRepo.GetDisputeByEscrowID(escrowID)
}

func (uc *DefaultUsecase) GetSellerBalance(sellerID string) (float64, error) {
	return uc.EscrowRepo.GetSellerBalance(sellerID)
}

// DueForAutoRelease reads the sweep snapshot. Transitions landing mid-sweep
// are picked up on the next tick.
func (uc *DefaultUsecase) DueForAutoRelease(now time.Time) ([]*domain.Escrow, error) {
	return uc.EscrowRepo.FindDueForAutoRelease(now)
}
