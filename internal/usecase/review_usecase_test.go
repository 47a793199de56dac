package usecase

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/peertrade/escrow-service/internal/domain"
    reviewdto "github.com/peertrade/escrow-service/internal/usecase/dto/review"
)

func releasedEscrow() *domain.Escrow {
    return &domain.Escrow{
        ID:       "esc-1",
        OrderID:  "order-1",
        BuyerID:  "buyer-1",
        SellerID: "seller-1",
        Amount:   100,
        Currency: "USD",
        State:    domain.EscrowReleased,
    }
}

func newReviewEnv() (*DefaultReviewUsecase, *fakeReviewRepo, *fakeEscrowReader, *fakeTrustService) {
    reviewRepo := newFakeReviewRepo()
    escrowRepo := newFakeEscrowReader()
    trust := &fakeTrustService{}
    uc := NewDefaultReviewUsecase(reviewRepo, escrowRepo, trust, nil, nil)
    uc.Clock = func() time.Time { return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC) }
    return uc, reviewRepo, escrowRepo, trust
}

func TestAddReview_Success(t *testing.T) {
    uc, _, escrowRepo, trust := newReviewEnv()
    escrowRepo.byOrder["order-1"] = releasedEscrow()

    review, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-1",
        OrderID: "order-1",
        Rating:  5,
        Comment: "fast shipping",
    })
    require.NoError(t, err)

    assert.Equal(t, "seller-1", review.SellerID)
    assert.True(t, review.VerifiedPurchase)
    assert.Equal(t, 5, review.Rating)

    trust.mu.Lock()
    defer trust.mu.Unlock()
    assert.Equal(t, []string{"seller-1"}, trust.recomputed)
}

func TestAddReview_UnknownOrder(t *testing.T) {
    uc, _, _, _ := newReviewEnv()

    _, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-1",
        OrderID: "missing",
        Rating:  4,
    })
    assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestAddReview_EscrowNotReleased(t *testing.T) {
    uc, _, escrowRepo, _ := newReviewEnv()
    escrow := releasedEscrow()
    escrow.State = domain.EscrowFunded
    escrowRepo.byOrder["order-1"] = escrow

    _, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-1",
        OrderID: "order-1",
        Rating:  4,
    })
    require.Error(t, err)
    assert.ErrorIs(t, err, domain.ErrNotReleased)

    var domainErr *domain.Error
    require.ErrorAs(t, err, &domainErr)
    assert.Equal(t, domain.EscrowFunded, domainErr.CurrentState)
}

func TestAddReview_WrongBuyer(t *testing.T) {
    uc, _, escrowRepo, _ := newReviewEnv()
    escrowRepo.byOrder["order-1"] = releasedEscrow()

    _, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-2",
        OrderID: "order-1",
        Rating:  4,
    })
    assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAddReview_Duplicate(t *testing.T) {
    uc, _, escrowRepo, _ := newReviewEnv()
    escrowRepo.byOrder["order-1"] = releasedEscrow()

    _, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-1",
        OrderID: "order-1",
        Rating:  4,
    })
    require.NoError(t, err)

    _, err = uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-1",
        OrderID: "order-1",
        Rating:  1,
    })
    assert.ErrorIs(t, err, domain.ErrDuplicateReview)
}

func TestAddReview_InvalidRating(t *testing.T) {
    uc, _, escrowRepo, _ := newReviewEnv()
    escrowRepo.byOrder["order-1"] = releasedEscrow()

    for _, rating := range []int{0, 6, -1} {
        _, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
            BuyerID: "buyer-1",
            OrderID: "order-1",
            Rating:  rating,
        })
        assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", rating)
    }
}

func TestAddReview_RecomputeFailureQueuesRetry(t *testing.T) {
    uc, _, escrowRepo, trust := newReviewEnv()
    escrowRepo.byOrder["order-1"] = releasedEscrow()
    trust.recomputeErr = domain.ErrGatewayUnavailable

    review, err := uc.AddReview(context.Background(), &reviewdto.AddReviewInput{
        BuyerID: "buyer-1",
        OrderID: "order-1",
        Rating:  3,
    })
    require.NoError(t, err, "trust recompute failure must not fail the review")
    assert.NotNil(t, review)

    trust.mu.Lock()
    defer trust.mu.Unlock()
    assert.Equal(t, []string{"seller-1"}, trust.queued)
}

func TestListReviews_PaginationDefaults(t *testing.T) {
    uc, reviewRepo, _, _ := newReviewEnv()
    for i := 0; i < 3; i++ {
        reviewRepo.byOrder[string(rune('a'+i))] = &domain.Review{
            ID:       string(rune('a' + i)),
            SellerID: "seller-1",
            Rating:   4,
        }
    }

    reviews, total, err := uc.ListReviews("seller-1", 0, 0)
    require.NoError(t, err)
    assert.Equal(t, int64(3), total)
    assert.Len(t, reviews, 3)

    reviews, _, err = uc.ListReviews("seller-1", 2, 2)
    require.NoError(t, err)
    assert.Len(t, reviews, 1)

    _, _, err = uc.ListReviews("seller-1", 1, 500)
    require.NoError(t, err)
}

func TestMarkHelpfulAndReport(t *testing.T) {
    uc, reviewRepo, _, _ := newReviewEnv()
    reviewRepo.byOrder["order-1"] = &domain.Review{ID: "rev-1", SellerID: "seller-1"}

    require.NoError(t, uc.MarkHelpful("rev-1"))
    require.NoError(t, uc.ReportReview("rev-1"))

    stored := reviewRepo.byOrder["order-1"]
    assert.Equal(t, 1, stored.HelpfulCount)
    assert.True(t, stored.Reported)

    assert.ErrorIs(t, uc.MarkHelpful("missing"), domain.ErrReviewNotFound)
}
