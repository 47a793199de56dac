package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/kafka"
	"github.com/peertrade/escrow-service/internal/infrastructure/metrics"
	reviewdto "github.com/peertrade/escrow-service/internal/usecase/dto/review"
)

const (
	defaultPageSize = 20
	maxPageSize 	= 100
)

type ReviewUsecase interface {
	AddReview(ctx context.Context, input *reviewdto.AddReviewInput) (*domain.Review, error)
	ListReviews(sellerID string, page, pageSize int) ([]*domain.Review, int64, error)
	MarkHelpful(reviewID string) error
	ReportReview(reviewID string) error
}

type ReviewEventPublisher interface {
	PublishReview(event kafka.ReviewEvent) error
}

type DefaultReviewUsecase struct {
	ReviewRepo domain.ReviewRepository
	EscrowRepo domain.EscrowRepository
	Trust 	   TrustUsecase
	Publisher  ReviewEventPublisher
	Metrics    *metrics.EscrowMetrics
	Clock 	   func() time.Time
}

func NewDefaultReviewUsecase(
	reviewRepo domain.ReviewRepository,
	escrowRepo domain.EscrowRepository,
	trust TrustUsecase,
	publisher ReviewEventPublisher,
	escrowMetrics *metrics.EscrowMetrics) *DefaultReviewUsecase {

	return &DefaultReviewUsecase{
		ReviewRepo: reviewRepo,
		EscrowRepo: escrowRepo,
		Trust: trust,
		Publisher: publisher,
		Metrics: escrowMetrics,
		Clock: time.Now,
	}
}

// AddReview records buyer feedback for a settled order. The escrow must be
// RELEASED, which is exactly what makes every stored review a verified
// purchase. The trust recompute afterwards is a side effect: its failure is
// logged and queued for retry, never rolled into the review's fate.
func (uc *DefaultReviewUsecase) AddReview(ctx context.Context, input *reviewdto.AddReviewInput) (*domain.Review, error) {
	escrow, err := uc.EscrowRepo.GetEscrowByOrderID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if escrow.State != domain.EscrowReleased {
		return nil, domain.StateConflict(domain.ErrNotReleased, escrow.State)
	}
	if input.BuyerID != escrow.BuyerID {
		return nil, domain.ErrUnauthorized
	}
	if existing, err := uc.ReviewRepo.GetReviewByOrderID(input.OrderID); err == nil && existing != nil {
		return nil, domain.ErrDuplicateReview
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	review := &domain.Review{
		ID: uuid.New().String(),
		OrderID: input.OrderID,
		SellerID: escrow.SellerID,
		BuyerID: input.BuyerID,
		Rating: input.Rating,
		Comment: input.Comment,
		VerifiedPurchase: true,
		CreatedAt: uc.Clock(),
	}

	if err := uc.ReviewRepo.CreateReview(review); err != nil {
		return nil, err
	}

	if uc.Publisher != nil {
		go func(event kafka.ReviewEvent) {
			if err := uc.Publisher.PublishReview(event); err != nil {
				slog.Error("failed to publish kafka ReviewEvent", "review_id", event.ReviewID, "error", err.Error())
			}
		}(kafka.ReviewEvent{
			EventType: kafka.EventReviewAdded,
			ReviewID: review.ID,
			OrderID: review.OrderID,
			SellerID: review.SellerID,
			Rating: review.Rating,
		})
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordReviewAdded(ratingLabel(review.Rating))
	}

	if _, err := uc.Trust.Recompute(ctx, review.SellerID); err != nil {
		slog.Error("trust recompute after review failed", "seller_id", review.SellerID, "error", err.Error())
		uc.Trust.RecomputeAsync(review.SellerID)
	}

	return review, nil
}

func (uc *DefaultReviewUsecase) ListReviews(sellerID string, page, pageSize int) ([]*domain.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return uc.ReviewRepo.ListReviewsBySeller(sellerID, page, pageSize)
}

func (uc *DefaultReviewUsecase) MarkHelpful(reviewID string) error {
	return uc.ReviewRepo.IncrementHelpful(reviewID)
}

func (uc *DefaultReviewUsecase) ReportReview(reviewID string) error {
	return uc.ReviewRepo.MarkReported(reviewID)
}
