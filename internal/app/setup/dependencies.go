package setup

import (
    "fmt"
    "time"

    "github.com/peertrade/escrow-service/internal/config"
    "github.com/peertrade/escrow-service/internal/domain"
    "github.com/peertrade/escrow-service/internal/infrastructure/chat"
    "github.com/peertrade/escrow-service/internal/infrastructure/gateway"
    "github.com/peertrade/escrow-service/internal/infrastructure/kafka"
    "github.com/peertrade/escrow-service/internal/infrastructure/kyc"
    "github.com/peertrade/escrow-service/internal/infrastructure/metrics"
    "github.com/peertrade/escrow-service/internal/infrastructure/postgres"
    "github.com/peertrade/escrow-service/internal/infrastructure/postgres/repository"
    "gorm.io/gorm"
)

type Dependencies struct {
    Config          *config.EscrowConfig
    DB              *gorm.DB
    KafkaTransport  *kafka.DefaultKafkaPublisher
    EscrowPublisher *kafka.KafkaPublisher
    ReviewPublisher *kafka.KafkaPublisher
    TrustPublisher  *kafka.KafkaPublisher
    Gateway         domain.PaymentGateway
    KYCProvider     domain.VerificationProvider
    ChatProvider    domain.ResponseTimeProvider
    Metrics         *metrics.EscrowMetrics
    Repositories    *Repositories
}

type Repositories struct {
    EscrowRepo  domain.EscrowRepository
    DisputeRepo domain.DisputeRepository
    ReviewRepo  domain.ReviewRepository
    TrustRepo   domain.TrustScoreRepository
}

func InitializeDependencies() (*Dependencies, error) {
    cfg := config.MustLoad()

    db := postgres.MustInitDB(cfg)

    brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
    transport := kafka.NewDefaultKafkaPublisher(brokers)

    repos := &Repositories{
        EscrowRepo:  repository.NewDefaultEscrowRepository(db),
        DisputeRepo: repository.NewDefaultDisputeRepository(db),
        ReviewRepo:  repository.NewDefaultReviewRepository(db),
        TrustRepo:   repository.NewDefaultTrustScoreRepository(db),
    }

    return &Dependencies{
        Config:          cfg,
        DB:              db,
        KafkaTransport:  transport,
        EscrowPublisher: kafka.NewKafkaPublisher(transport, "escrow-events"),
        ReviewPublisher: kafka.NewKafkaPublisher(transport, "review-events"),
        TrustPublisher:  kafka.NewKafkaPublisher(transport, "trust-events"),
        Gateway:         gateway.NewHTTPPaymentGateway(cfg.PaymentGateway.Address, time.Duration(cfg.PaymentGateway.TimeoutSeconds)*time.Second),
        KYCProvider:     kyc.NewClient(cfg.KYCService.Address),
        ChatProvider:    chat.NewClient(cfg.ChatService.Address),
        Metrics:         metrics.NewEscrowMetrics(),
        Repositories:    repos,
    }, nil
}
