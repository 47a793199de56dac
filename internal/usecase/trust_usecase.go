package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/kafka"
	"github.com/peertrade/escrow-service/internal/infrastructure/metrics"
	"golang.org/x/sync/errgroup"
)

type TrustUsecase interface {
	GetTrustScore(ctx context.Context, sellerID string) (*domain.TrustScore, error)
	Recompute(ctx context.Context, sellerID string) (*domain.TrustScore, error)
	RecomputeAsync(sellerID string)
	RetryFailed(ctx context.Context)
}

type TrustEventPublisher interface {
	PublishTrust(event kafka.TrustEvent) error
}

type DefaultTrustUsecase struct {
	TrustRepo  domain.TrustScoreRepository
	ReviewRepo domain.ReviewRepository
	EscrowRepo domain.EscrowRepository
	KYC 	   domain.VerificationProvider
	Chat 	   domain.ResponseTimeProvider
	Publisher  TrustEventPublisher
	Metrics    *metrics.EscrowMetrics

	// SignalTimeout bounds the parallel gather; a slow source degrades to its
	// neutral default instead of blocking the others.
	SignalTimeout time.Duration
	Clock 		  func() time.Time

	mu 		sync.Mutex
	pending map[string]struct{}
}

func NewDefaultTrustUsecase(
	trustRepo domain.TrustScoreRepository,
	reviewRepo domain.ReviewRepository,
	escrowRepo domain.EscrowRepository,
	kycProvider domain.VerificationProvider,
	chatProvider domain.ResponseTimeProvider,
	publisher TrustEventPublisher,
	escrowMetrics *metrics.EscrowMetrics,
	signalTimeout time.Duration) *DefaultTrustUsecase {

	return &DefaultTrustUsecase{
		TrustRepo: trustRepo,
		ReviewRepo: reviewRepo,
		EscrowRepo: escrowRepo,
		KYC: kycProvider,
		Chat: chatProvider,
		Publisher: publisher,
		Metrics: escrowMetrics,
		SignalTimeout: signalTimeout,
		Clock: time.Now,
		pending: make(map[string]struct{}),
	}
}

// GetTrustScore serves the cached value unless a contributing event landed
// after the last computation, in which case it recomputes synchronously.
func (uc *DefaultTrustUsecase) GetTrustScore(ctx context.Context, sellerID string) (*domain.TrustScore, error) {
	score, err := uc.TrustRepo.GetTrustScore(sellerID)
	if err != nil {
		return nil, err
	}
	if score != nil && !score.Stale {
		return score, nil
	}
	return uc.Recompute(ctx, sellerID)
}

// Recompute gathers the five signals and replaces the score row. Pure with
// respect to the signals: concurrent recomputes race to the same value.
func (uc *DefaultTrustUsecase) Recompute(ctx context.Context, sellerID string) (*domain.TrustScore, error) {
	signals := uc.gatherSignals(ctx, sellerID)

	score := &domain.TrustScore{
		SellerID: sellerID,
		Value: domain.CompositeScore(signals),
		ComputedAt: uc.Clock(),
	}
	if err := uc.TrustRepo.SaveTrustScore(score); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordTrustRecompute("error")
		}
		return nil, err
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordTrustRecompute("ok")
	}

	if uc.Publisher != nil {
		go func(event kafka.TrustEvent) {
			if err := uc.Publisher.PublishTrust(event); err != nil {
				slog.Error("failed to publish kafka TrustEvent", "seller_id", event.SellerID, "error", err.Error())
			}
		}(kafka.TrustEvent{
			EventType: kafka.EventTrustScoreUpdated,
			SellerID: sellerID,
			Value: score.Value,
		})
	}

	return score, nil
}

// RecomputeAsync marks the cached score stale and queues the seller for the
// retry worker. Derived view only: it never blocks or fails the triggering
// financial transition.
func (uc *DefaultTrustUsecase) RecomputeAsync(sellerID string) {
	if err := uc.TrustRepo.MarkStale(sellerID); err != nil {
		slog.Error("failed to mark trust score stale", "seller_id", sellerID, "error", err.Error())
	}
	uc.mu.Lock()
	uc.pending[sellerID] = struct{}{}
	uc.mu.Unlock()
}

// RetryFailed drains the pending set; sellers whose recompute fails again are
// re-queued for the next tick.
func (uc *DefaultTrustUsecase) RetryFailed(ctx context.Context) {
	uc.mu.Lock()
	batch := make([]string, 0, len(uc.pending))
	for sellerID := range uc.pending {
		batch = append(batch, sellerID)
	}
	uc.pending = make(map[string]struct{})
	uc.mu.Unlock()

	for _, sellerID := range batch {
		if _, err := uc.Recompute(ctx, sellerID); err != nil {
			slog.Error("trust recompute retry failed", "seller_id", sellerID, "error", err.Error())
			uc.mu.Lock()
			uc.pending[sellerID] = struct{}{}
			uc.mu.Unlock()
		}
	}
}

// gatherSignals fetches the five component signals in parallel under one
// deadline. Every signal starts at its neutral default and is only
// overwritten on success, so a failing source never fails the computation.
func (uc *DefaultTrustUsecase) gatherSignals(ctx context.Context, sellerID string) domain.TrustSignals {
	signals := domain.TrustSignals{
		AverageRating:  domain.NeutralRating,
		CompletionRate: domain.NeutralCompletion,
		ResponseScore:  domain.NeutralResponse,
		DisputeRate:    0,
		Verification:   0,
	}

	gatherCtx, cancel := context.WithTimeout(ctx, uc.SignalTimeout)
	defer cancel()

	g, gatherCtx := errgroup.WithContext(gatherCtx)
	var mu sync.Mutex

	g.Go(func() error {
		stats, err := uc.ReviewRepo.SellerRatingStats(sellerID)
		if err != nil {
			slog.Warn("rating signal unavailable", "seller_id", sellerID, "error", err.Error())
			return nil
		}
		if stats.Count > 0 {
			mu.Lock()
			signals.AverageRating = stats.Average / 5
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		stats, err := uc.EscrowRepo.SellerEscrowStats(sellerID)
		if err != nil {
			slog.Warn("escrow stats signal unavailable", "seller_id", sellerID, "error", err.Error())
			return nil
		}
		mu.Lock()
		if stats.FundedOrLater > 0 {
			signals.CompletionRate = float64(stats.Released) / float64(stats.FundedOrLater)
			signals.DisputeRate = float64(stats.Disputed) / float64(stats.FundedOrLater)
		}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		score, err := uc.Chat.AverageResponseScore(gatherCtx, sellerID)
		if err != nil {
			slog.Warn("response time signal unavailable", "seller_id", sellerID, "error", err.Error())
			return nil
		}
		mu.Lock()
		signals.ResponseScore = score
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		verified, err := uc.KYC.IsVerified(gatherCtx, sellerID)
		if err != nil {
			slog.Warn("verification signal unavailable", "seller_id", sellerID, "error", err.Error())
			return nil
		}
		if verified {
			mu.Lock()
			signals.Verification = 1
			mu.Unlock()
		}
		return nil
	})

	g.Wait()
	return signals
}

func ratingLabel(rating int) string {
	return strconv.Itoa(rating)
}
