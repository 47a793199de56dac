package escrow

import (
	"context"
	"log/slog"

	"github.com/jaevor/go-nanoid"
	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/kafka"
	escrowdto "github.com/peertrade/escrow-service/internal/usecase/dto/escrow"
)

// OpenDispute freezes the escrow pending manual resolution. Either party may
// open one; auto-release never fires while the dispute is open.
func (uc *DefaultUsecase) OpenDispute(ctx context.Context, input *escrowdto.OpenDisputeInput) (*domain.Escrow, error) {
	uc.locks.lock(input.EscrowID)
	defer uc.locks.unlock(input.EscrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(input.EscrowID)
	if err != nil {
		return nil, err
	}
	if !escrow.CanTransition(domain.EscrowDisputed) {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}
	if input.ActorID != escrow.BuyerID && input.ActorID != escrow.SellerID {
		return nil, domain.ErrUnauthorized
	}

	now := uc.Clock()
	escrow.State = domain.EscrowDisputed
	escrow.DisputedAt = &now

	if err := uc.EscrowRepo.SaveTransition(escrow, []domain.EscrowState{domain.EscrowFunded}, 0); err != nil {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	dispute := &domain.Dispute{
		ID: idGenerator(),
		EscrowID: escrow.ID,
		OpenedBy: input.ActorID,
		Reason: input.Reason,
		OpenedAt: now,
	}
	if err := uc.DisputeRepo.CreateDispute(dispute); err != nil {
		// Escrow is already DISPUTED; the dispute record is bookkeeping.
		slog.Error("failed to persist dispute record", "escrow_id", escrow.ID, "error", err.Error())
	}

	uc.publishEscrowEvent(kafka.EventDisputeOpened, escrow)
	if uc.Metrics != nil {
		uc.Metrics.RecordDisputeOpened(escrow.Currency)
	}
	uc.notifyTrust(escrow.SellerID)

	return escrow, nil
}

// ResolveDispute settles a DISPUTED escrow in either direction. Authorization
// of the resolver role belongs to the delivery edge.
func (uc *DefaultUsecase) ResolveDispute(ctx context.Context, escrowID string, resolution domain.DisputeResolution) (*domain.Escrow, error) {
	if resolution != domain.ResolutionReleaseToSeller && resolution != domain.ResolutionRefundToBuyer {
		return nil, domain.ErrInvalidResolution
	}

	uc.locks.lock(escrowID)
	defer uc.locks.unlock(escrowID)

	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}
	if escrow.State != domain.EscrowDisputed {
		return nil, domain.StateConflict(domain.ErrInvalidTransition, escrow.State)
	}

	var resolved *domain.Escrow
	if resolution == domain.ResolutionReleaseToSeller {
		resolved, err = uc.releaseLocked(escrow, nil, "dispute")
	} else {
		resolved, err = uc.refundLocked(ctx, escrow)
	}
	if err != nil {
		return nil, err
	}

	if dispute, derr := uc.DisputeRepo.GetDisputeByEscrowID(escrowID); derr == nil {
		if derr := uc.DisputeRepo.ResolveDispute(dispute.ID, resolution, *resolved.ResolvedAt); derr != nil {
			slog.Error("failed to mark dispute resolved", "dispute_id", dispute.ID, "error", derr.Error())
		}
	}

	return resolved, nil
}
