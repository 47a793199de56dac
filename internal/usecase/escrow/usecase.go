package escrow

import (
	"context"
	"log/slog"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/kafka"
	"github.com/peertrade/escrow-service/internal/infrastructure/metrics"
	escrowdto "github.com/peertrade/escrow-service/internal/usecase/dto/escrow"
)

type Usecase interface {
	CreateEscrow(input *escrowdto.CreateEscrowInput) (*domain.Escrow, error)
	InitiatePayment(ctx context.Context, input *escrowdto.InitiatePaymentInput) (*domain.Escrow, error)
	Fund(ctx context.Context, escrowID, gatewayPaymentID string) (*domain.Escrow, error)
	ConfirmDelivery(ctx context.Context, escrowID, actorID string) (*domain.Escrow, error)
	AutoRelease(ctx context.Context, escrowID string) (*domain.Escrow, error)
	OpenDispute(ctx context.Context, input *escrowdto.OpenDisputeInput) (*domain.Escrow, error)
	ResolveDispute(ctx context.Context, escrowID string, resolution domain.DisputeResolution) (*domain.Escrow, error)
	Refund(ctx context.Context, escrowID, reason string) (*domain.Escrow, error)
	Cancel(ctx context.Context, escrowID string) (*domain.Escrow, error)

	GetEscrowByID(escrowID string) (*domain.Escrow, error)
	GetEscrowByOrderID(orderID string) (*domain.Escrow, error)
	GetDisputeByEscrowID(escrowID string) (*domain.Dispute, error)
	GetSellerBalance(sellerID string) (float64, error)
	DueForAutoRelease(now time.Time) ([]*domain.Escrow, error)
}

// EventPublisher is the slice of the kafka publisher the ledger needs.
type EventPublisher interface {
	PublishEscrow(event kafka.EscrowEvent) error
}

// TrustRecomputer is notified whenever a settlement outcome changes a trust
// signal. The recompute is eventually consistent and never blocks a
// financial transition.
type TrustRecomputer interface {
	RecomputeAsync(sellerID string)
}

type DefaultUsecase struct {
	EscrowRepo  domain.EscrowRepository
	DisputeRepo domain.DisputeRepository
	Gateway 	domain.PaymentGateway
	Publisher 	EventPublisher
	Trust 		TrustRecomputer
	Metrics 	*metrics.EscrowMetrics

	// Clock is swappable in tests; defaults to time.Now.
	Clock func() time.Time

	locks keyedMutex
}

func NewDefaultUsecase(
	escrowRepo domain.EscrowRepository,
	disputeRepo domain.DisputeRepository,
	gateway domain.PaymentGateway,
	publisher EventPublisher,
	trust TrustRecomputer,
	escrowMetrics *metrics.EscrowMetrics) *DefaultUsecase {

	return &DefaultUsecase{
		EscrowRepo: escrowRepo,
		DisputeRepo: disputeRepo,
		Gateway: gateway,
		Publisher: publisher,
		Trust: trust,
		Metrics: escrowMetrics,
		Clock: time.Now,
	}
}

func (uc *DefaultUsecase) publishEscrowEvent(eventType string, escrow *domain.Escrow) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.EscrowEvent) {
		if err := uc.Publisher.PublishEscrow(event); err != nil {
			slog.Error("failed to publish kafka EscrowEvent", "event", event.EventType, "escrow_id", event.EscrowID, "error", err.Error())
		}
	}(kafka.EscrowEvent{
		EventType: eventType,
		EscrowID: escrow.ID,
		OrderID: escrow.OrderID,
		BuyerID: escrow.BuyerID,
		SellerID: escrow.SellerID,
		State: string(escrow.State),
		Amount: escrow.Amount,
		Currency: escrow.Currency,
	})
}

func (uc *DefaultUsecase) notifyTrust(sellerID string) {
	if uc.Trust != nil {
		uc.Trust.RecomputeAsync(sellerID)
	}
}
