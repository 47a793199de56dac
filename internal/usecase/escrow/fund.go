package escrow

import (
	"context"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/kafka"
	escrowdto "github.com/peertrade/escrow-service/internal/usecase/dto/escrow"
)

// InitiatePayment captures funds through the gateway and funds the escrow in
// one call. The gateway is invoked before any state change, so a capture
// timeout leaves the escrow in CREATED and the retry is safe.
func (uc *DefaultUsecase) InitiatePayment(ctx context.Context, input *escrowdto.InitiatePaymentInput) (*domain.Escrow, error) {
	uc.locks.lock(input.EscrowID)
	defer uc.locks.unlock(input.EscrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(input.EscrowID)
	if err != nil {
		return nil, err
	}
	if !escrow.CanTransition(domain.EscrowFunded) {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}

	gatewayPaymentID, err := uc.Gateway.Capture(ctx, escrow.Amount, escrow.Currency, input.PaymentMethod)
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordGatewayError("capture")
		}
		return nil, err
	}

	return uc.fundLocked(escrow, gatewayPaymentID)
}

// Fund moves CREATED -> FUNDED on the gateway's capture confirmation. The
// gateway payment id doubles as the idempotency key: a repeated webhook with
// the same id is a no-op success, a different id on a funded escrow is a
// conflict.
func (uc *DefaultUsecase) Fund(ctx context.Context, escrowID, gatewayPaymentID string) (*domain.Escrow, error) {
	uc.locks.lock(escrowID)
	defer uc.locks.unlock(escrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}

	if escrow.State == domain.EscrowFunded && escrow.GatewayPaymentID == gatewayPaymentID {
		return escrow, nil
	}
	if escrow.GatewayPaymentID != "" && escrow.GatewayPaymentID != gatewayPaymentID {
		return nil, domain.StateConflict(domain.ErrAlreadyFunded, escrow.State)
	}
	if !escrow.CanTransition(domain.EscrowFunded) {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}

	return uc.fundLocked(escrow, gatewayPaymentID)
}

func (uc *DefaultUsecase) fundLocked(escrow *domain.Escrow, gatewayPaymentID string) (*domain.Escrow, error) {
	now := uc.Clock()
	escrow.State = domain.EscrowFunded
	escrow.GatewayPaymentID = gatewayPaymentID
	escrow.FundedAt = &now

	if err := uc.EscrowRepo.SaveTransition(escrow, []domain.EscrowState{domain.EscrowCreated}, 0); err != nil {
		return nil, err
	}

	uc.publishEscrowEvent(kafka.EventEscrowFunded, escrow)
	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowFunded(escrow.Currency, escrow.Amount)
	}
	uc.notifyTrust(escrow.SellerID)

	return escrow, nil
}
