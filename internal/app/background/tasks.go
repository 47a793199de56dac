package background

import (
    "context"
    "log"
    "time"

    "github.com/peertrade/escrow-service/internal/infrastructure/metrics"
    "github.com/peertrade/escrow-service/internal/usecase"
    "github.com/peertrade/escrow-service/internal/usecase/escrow"
)

type BackgroundTasks struct {
    EscrowUsecase escrow.Usecase
    TrustUsecase  usecase.TrustUsecase
    Metrics       *metrics.EscrowMetrics

    SweepInterval      time.Duration
    TrustRetryInterval time.Duration
}

func NewBackgroundTasks(escrowUC escrow.Usecase, trustUC usecase.TrustUsecase, escrowMetrics *metrics.EscrowMetrics, sweepInterval, trustRetryInterval time.Duration) *BackgroundTasks {
    return &BackgroundTasks{
        EscrowUsecase:      escrowUC,
        TrustUsecase:       trustUC,
        Metrics:            escrowMetrics,
        SweepInterval:      sweepInterval,
        TrustRetryInterval: trustRetryInterval,
    }
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
    go bt.startSettlementSweep(ctx)
    go bt.startTrustRetry(ctx)
}

func (bt *BackgroundTasks) startSettlementSweep(ctx context.Context) {
    ticker := time.NewTicker(bt.SweepInterval)
    defer ticker.Stop()

    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            if err := bt.RunSweep(ctx); err != nil {
                log.Printf("Auto-release sweep error: %v\n", err)
            }
        }
    }
}

// RunSweep auto-releases every funded escrow whose confirmation window has
// elapsed. Outcomes are independent: a failure on one escrow (gateway down,
// concurrent dispute) is counted and left for the next tick, never aborting
// the rest of the sweep.
func (bt *BackgroundTasks) RunSweep(ctx context.Context) error {
    start := time.Now()

    due, err := bt.EscrowUsecase.DueForAutoRelease(start)
    if err != nil {
        return err
    }

    released, failed := 0, 0
    for _, esc := range due {
        if _, err := bt.EscrowUsecase.AutoRelease(ctx, esc.ID); err != nil {
            failed++
            log.Printf("auto-release failed for escrow %s: %v\n", esc.ID, err)
            continue
        }
        released++
    }

    if bt.Metrics != nil {
        bt.Metrics.RecordSweep(time.Since(start).Seconds(), released, failed)
    }
    return nil
}

func (bt *BackgroundTasks) startTrustRetry(ctx context.Context) {
    ticker := time.NewTicker(bt.TrustRetryInterval)
    defer ticker.Stop()

    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            bt.TrustUsecase.RetryFailed(ctx)
        }
    }
}
