package setup

import (
    "time"

    "github.com/peertrade/escrow-service/internal/usecase"
    "github.com/peertrade/escrow-service/internal/usecase/escrow"
)

type UseCases struct {
    EscrowUsecase escrow.Usecase
    ReviewUsecase usecase.ReviewUsecase
    TrustUsecase  usecase.TrustUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
    trustUsecase := usecase.NewDefaultTrustUsecase(
        deps.Repositories.TrustRepo,
        deps.Repositories.ReviewRepo,
        deps.Repositories.EscrowRepo,
        deps.KYCProvider,
        deps.ChatProvider,
        deps.TrustPublisher,
        deps.Metrics,
        time.Duration(deps.Config.Settlement.SignalTimeoutSeconds)*time.Second,
    )

    escrowUsecase := escrow.NewDefaultUsecase(
        deps.Repositories.EscrowRepo,
        deps.Repositories.DisputeRepo,
        deps.Gateway,
        deps.EscrowPublisher,
        trustUsecase,
        deps.Metrics,
    )

    reviewUsecase := usecase.NewDefaultReviewUsecase(
        deps.Repositories.ReviewRepo,
        deps.Repositories.EscrowRepo,
        trustUsecase,
        deps.ReviewPublisher,
        deps.Metrics,
    )

    return &UseCases{
        EscrowUsecase: escrowUsecase,
        ReviewUsecase: reviewUsecase,
        TrustUsecase:  trustUsecase,
    }, nil
}
