package usecase

import (
    "context"
    "sync"
    "time"

    "github.com/peertrade/escrow-service/internal/domain"
)

type fakeReviewRepo struct {
    mu      sync.Mutex
    byOrder map[string]*domain.Review
    stats   *domain.RatingStats

    createErr error
    statsErr  error
}

func newFakeReviewRepo() *fakeReviewRepo {
    return &fakeReviewRepo{byOrder: make(map[string]*domain.Review)}
}

func (f *fakeReviewRepo) CreateReview(review *domain.Review) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.createErr != nil {
        return f.createErr
    }
    if _, exists := f.byOrder[review.OrderID]; exists {
        return domain.ErrDuplicateReview
    }
    f.byOrder[review.OrderID] = review
    return nil
}

func (f *fakeReviewRepo) GetReviewByOrderID(orderID string) (*domain.Review, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    review, ok := f.byOrder[orderID]
    if !ok {
        return nil, domain.ErrReviewNotFound
    }
    return review, nil
}

func (f *fakeReviewRepo) ListReviewsBySeller(sellerID string, page, pageSize int) ([]*domain.Review, int64, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    var all []*domain.Review
    for _, review := range f.byOrder {
        if review.SellerID == sellerID {
            all = append(all, review)
        }
    }
    total := int64(len(all))
    start := (page - 1) * pageSize
    if start >= len(all) {
        return nil, total, nil
    }
    end := start + pageSize
    if end > len(all) {
        end = len(all)
    }
    return all[start:end], total, nil
}

func (f *fakeReviewRepo) SellerRatingStats(sellerID string) (*domain.RatingStats, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.statsErr != nil {
        return nil, f.statsErr
    }
    if f.stats != nil {
        return f.stats, nil
    }
    stats := &domain.RatingStats{}
    var sum int
    for _, review := range f.byOrder {
        if review.SellerID == sellerID {
            stats.Count++
            sum += review.Rating
        }
    }
    if stats.Count > 0 {
        stats.Average = float64(sum) / float64(stats.Count)
    }
    return stats, nil
}

func (f *fakeReviewRepo) IncrementHelpful(reviewID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    for _, review := range f.byOrder {
        if review.ID == reviewID {
            review.HelpfulCount++
            return nil
        }
    }
    return domain.ErrReviewNotFound
}

func (f *fakeReviewRepo) MarkReported(reviewID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    for _, review := range f.byOrder {
        if review.ID == reviewID {
            review.Reported = true
            return nil
        }
    }
    return domain.ErrReviewNotFound
}

type fakeEscrowReader struct {
    byOrder map[string]*domain.Escrow
    stats   *domain.SellerEscrowStats

    statsErr error
}

func newFakeEscrowReader() *fakeEscrowReader {
    return &fakeEscrowReader{
        byOrder: make(map[string]*domain.Escrow),
        stats:   &domain.SellerEscrowStats{},
    }
}

func (f *fakeEscrowReader) CreateEscrow(escrow *domain.Escrow) error { return nil }

func (f *fakeEscrowReader) GetEscrowByID(escrowID string) (*domain.Escrow, error) {
    return nil, domain.ErrEscrowNotFound
}

func (f *fakeEscrowReader) GetEscrowByOrderID(orderID string) (*domain.Escrow, error) {
    escrow, ok := f.byOrder[orderID]
    if !ok {
        return nil, domain.ErrOrderNotFound
    }
    return escrow, nil
}

func (f *fakeEscrowReader) SaveTransition(escrow *domain.Escrow, fromStates []domain.EscrowState, balanceDelta float64) error {
    return nil
}

func (f *fakeEscrowReader) FindDueForAutoRelease(now time.Time) ([]*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeEscrowReader) SellerEscrowStats(sellerID string) (*domain.SellerEscrowStats, error) {
    if f.statsErr != nil {
        return nil, f.statsErr
    }
    return f.stats, nil
}

func (f *fakeEscrowReader) GetSellerBalance(sellerID string) (float64, error) { return 0, nil }

type fakeTrustRepo struct {
    mu     sync.Mutex
    scores map[string]*domain.TrustScore

    saveErr  error
    saves    int
    staleErr error
}

func newFakeTrustRepo() *fakeTrustRepo {
    return &fakeTrustRepo{scores: make(map[string]*domain.TrustScore)}
}

func (f *fakeTrustRepo) GetTrustScore(sellerID string) (*domain.TrustScore, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    return f.scores[sellerID], nil
}

func (f *fakeTrustRepo) SaveTrustScore(score *domain.TrustScore) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.saves++
    if f.saveErr != nil {
        return f.saveErr
    }
    f.scores[score.SellerID] = score
    return nil
}

func (f *fakeTrustRepo) MarkStale(sellerID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.staleErr != nil {
        return f.staleErr
    }
    if score, ok := f.scores[sellerID]; ok {
        score.Stale = true
    }
    return nil
}

type fakeVerification struct {
    verified bool
    err      error
}

func (f *fakeVerification) IsVerified(ctx context.Context, sellerID string) (bool, error) {
    return f.verified, f.err
}

type fakeResponseTime struct {
    score float64
    err   error
}

func (f *fakeResponseTime) AverageResponseScore(ctx context.Context, sellerID string) (float64, error) {
    return f.score, f.err
}

// fakeTrustService stands in for the full trust aggregator in review tests.
type fakeTrustService struct {
    mu         sync.Mutex
    recomputed []string
    queued     []string

    recomputeErr error
}

func (f *fakeTrustService) GetTrustScore(ctx context.Context, sellerID string) (*domain.TrustScore, error) {
    return nil, nil
}

func (f *fakeTrustService) Recompute(ctx context.Context, sellerID string) (*domain.TrustScore, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.recomputeErr != nil {
        return nil, f.recomputeErr
    }
    f.recomputed = append(f.recomputed, sellerID)
    return &domain.TrustScore{SellerID: sellerID}, nil
}

func (f *fakeTrustService) RecomputeAsync(sellerID string) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.queued = append(f.queued, sellerID)
}

func (f *fakeTrustService) RetryFailed(ctx context.Context) {}
