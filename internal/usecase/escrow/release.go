package escrow

import (
	"context"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/kafka"
)

// releaseLocked ends custody in the seller's favor: stamps resolvedAt, credits
// the seller balance in the same transaction, and emits EscrowReleased.
// Idempotent: an already released escrow is a no-op success. Caller holds the
// per-escrow lock.
func (uc *DefaultUsecase) releaseLocked(escrow *domain.Escrow, confirmedAt *time.Time, path string) (*domain.Escrow, error) {
	if escrow.State == domain.EscrowReleased {
		return escrow, nil
	}
	if !escrow.CanTransition(domain.EscrowReleased) {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}

	fromState := escrow.State
	now := uc.Clock()
	escrow.State = domain.EscrowReleased
	escrow.ResolvedAt = &now
	if confirmedAt != nil {
		escrow.DeliveryConfirmedAt = confirmedAt
	}

	if err := uc.EscrowRepo.SaveTransition(escrow, []domain.EscrowState{fromState}, escrow.Amount); err != nil {
		return nil, err
	}

	uc.publishEscrowEvent(kafka.EventEscrowReleased, escrow)
	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowReleased(escrow.Currency, path, escrow.Amount)
	}
	uc.notifyTrust(escrow.SellerID)

	return escrow, nil
}

// refundLocked returns funds to the buyer through the gateway, then records
// the transition. The gateway call comes first with a bounded timeout: on
// GATEWAY_UNAVAILABLE the escrow keeps its pre-call state and the retry is
// idempotent by gatewayPaymentID. Caller holds the per-escrow lock.
func (uc *DefaultUsecase) refundLocked(ctx context.Context, escrow *domain.Escrow) (*domain.Escrow, error) {
	if escrow.State == domain.EscrowRefunded {
		return escrow, nil
	}
	if !escrow.CanTransition(domain.EscrowRefunded) {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}

	if err := uc.Gateway.Refund(ctx, escrow.GatewayPaymentID, escrow.Amount); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordGatewayError("refund")
		}
		return nil, err
	}

	fromState := escrow.State
	now := uc.Clock()
	escrow.State = domain.EscrowRefunded
	escrow.ResolvedAt = &now

	if err := uc.EscrowRepo.SaveTransition(escrow, []domain.EscrowState{fromState}, 0); err != nil {
		return nil, err
	}

	uc.publishEscrowEvent(kafka.EventEscrowRefunded, escrow)
	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowRefunded(escrow.Currency, escrow.Amount)
	}
	uc.notifyTrust(escrow.SellerID)

	return escrow, nil
}

// AutoRelease is the scheduler-driven release path. It only fires for FUNDED
// escrows whose confirmation window elapsed and that carry no open dispute.
func (uc *DefaultUsecase) AutoRelease(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	uc.locks.lock(escrowID)
	defer uc.locks.unlock(escrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}
	if escrow.State != domain.EscrowFunded {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}
	if !escrow.AutoReleaseDue(uc.Clock()) {
		return nil, domain.ErrReleaseWindowOpen
	}

	return uc.releaseLocked(escrow, nil, "auto")
}
