package background

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/peertrade/escrow-service/internal/domain"
    escrowdto "github.com/peertrade/escrow-service/internal/usecase/dto/escrow"
)

type fakeSettlementUsecase struct {
    due      []*domain.Escrow
    dueErr   error
    released []string
    failOn   map[string]error
}

func (f *fakeSettlementUsecase) DueForAutoRelease(now time.Time) ([]*domain.Escrow, error) {
    return f.due, f.dueErr
}

func (f *fakeSettlementUsecase) AutoRelease(ctx context.Context, escrowID string) (*domain.Escrow, error) {
    if err, ok := f.failOn[escrowID]; ok {
        return nil, err
    }
    f.released = append(f.released, escrowID)
    return &domain.Escrow{ID: escrowID, State: domain.EscrowReleased}, nil
}

func (f *fakeSettlementUsecase) CreateEscrow(input *escrowdto.CreateEscrowInput) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) InitiatePayment(ctx context.Context, input *escrowdto.InitiatePaymentInput) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) Fund(ctx context.Context, escrowID, gatewayPaymentID string) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) ConfirmDelivery(ctx context.Context, escrowID, actorID string) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) OpenDispute(ctx context.Context, input *escrowdto.OpenDisputeInput) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) ResolveDispute(ctx context.Context, escrowID string, resolution domain.DisputeResolution) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) Refund(ctx context.Context, escrowID, reason string) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) Cancel(ctx context.Context, escrowID string) (*domain.Escrow, error) {
    return nil, nil
}

func (f *fakeSettlementUsecase) GetEscrowByID(escrowID string) (*domain.Escrow, error) {
    return nil, domain.ErrEscrowNotFound
}

func (f *fakeSettlementUsecase) GetEscrowByOrderID(orderID string) (*domain.Escrow, error) {
    return nil, domain.ErrOrderNotFound
}

func (f *fakeSettlementUsecase) GetDisputeByEscrowID(escrowID string) (*domain.Dispute, error) {
    return nil, domain.ErrDisputeNotFound
}

func (f *fakeSettlementUsecase) GetSellerBalance(sellerID string) (float64, error) {
    return 0, nil
}

type fakeTrustRetrier struct {
    retries int
}

func (f *fakeTrustRetrier) GetTrustScore(ctx context.Context, sellerID string) (*domain.TrustScore, error) {
    return nil, nil
}

func (f *fakeTrustRetrier) Recompute(ctx context.Context, sellerID string) (*domain.TrustScore, error) {
    return nil, nil
}

func (f *fakeTrustRetrier) RecomputeAsync(sellerID string) {}

func (f *fakeTrustRetrier) RetryFailed(ctx context.Context) {
    f.retries++
}

func TestRunSweep_ReleasesAllDue(t *testing.T) {
    escrowUC := &fakeSettlementUsecase{
        due: []*domain.Escrow{{ID: "esc-1"}, {ID: "esc-2"}},
    }
    tasks := NewBackgroundTasks(escrowUC, &fakeTrustRetrier{}, nil, time.Second, time.Second)

    require.NoError(t, tasks.RunSweep(context.Background()))
    assert.Equal(t, []string{"esc-1", "esc-2"}, escrowUC.released)
}

func TestRunSweep_ContinuesPastFailures(t *testing.T) {
    escrowUC := &fakeSettlementUsecase{
        due: []*domain.Escrow{{ID: "esc-1"}, {ID: "esc-2"}, {ID: "esc-3"}},
        failOn: map[string]error{
            "esc-2": domain.StateConflict(domain.ErrInvalidTransition, domain.EscrowDisputed),
        },
    }
    tasks := NewBackgroundTasks(escrowUC, &fakeTrustRetrier{}, nil, time.Second, time.Second)

    require.NoError(t, tasks.RunSweep(context.Background()))
    assert.Equal(t, []string{"esc-1", "esc-3"}, escrowUC.released,
        "one losing escrow must not abort the rest of the sweep")
}

func TestRunSweep_SnapshotError(t *testing.T) {
    escrowUC := &fakeSettlementUsecase{dueErr: errors.New("db unavailable")}
    tasks := NewBackgroundTasks(escrowUC, &fakeTrustRetrier{}, nil, time.Second, time.Second)

    assert.Error(t, tasks.RunSweep(context.Background()))
}
