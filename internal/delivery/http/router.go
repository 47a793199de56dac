package http

import (
    "net/http"
    "time"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "github.com/peertrade/escrow-service/internal/app/setup"
    "github.com/peertrade/escrow-service/internal/delivery/http/handlers"
)

func NewRouter(useCases *setup.UseCases) *gin.Engine {
    escrowHandler := handlers.NewEscrowHandler(useCases.EscrowUsecase)
    reviewHandler := handlers.NewReviewHandler(useCases.ReviewUsecase)
    trustHandler := handlers.NewTrustHandler(useCases.TrustUsecase)

    r := gin.New()
    r.Use(gin.Logger(), gin.Recovery())
    r.Use(cors.New(cors.Config{
        AllowOrigins:     []string{"*"},
        AllowMethods:     []string{"GET", "POST"},
        AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
        MaxAge:           12 * time.Hour,
        AllowCredentials: false,
    }))

    r.GET("/health", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "healthy"})
    })
    r.GET("/metrics", gin.WrapH(promhttp.Handler()))

    v1 := r.Group("/v1")
    {
        escrows := v1.Group("/escrows")
        {
            escrows.POST("", escrowHandler.CreateEscrow)
            escrows.GET("/:id", escrowHandler.GetEscrow)
            escrows.POST("/:id/pay", escrowHandler.InitiatePayment)
            escrows.POST("/:id/fund", escrowHandler.FundEscrow)
            escrows.POST("/:id/confirm-delivery", escrowHandler.ConfirmDelivery)
            escrows.POST("/:id/dispute", escrowHandler.OpenDispute)
            escrows.POST("/:id/dispute/resolve", escrowHandler.ResolveDispute)
            escrows.GET("/:id/dispute", escrowHandler.GetDispute)
            escrows.POST("/:id/refund", escrowHandler.RefundEscrow)
            escrows.POST("/:id/cancel", escrowHandler.CancelEscrow)
        }

        v1.GET("/orders/:orderID/escrow", escrowHandler.GetEscrowByOrder)

        reviews := v1.Group("/reviews")
        {
            reviews.POST("", reviewHandler.AddReview)
            reviews.POST("/:id/helpful", reviewHandler.MarkHelpful)
            reviews.POST("/:id/report", reviewHandler.ReportReview)
        }

        sellers := v1.Group("/sellers")
        {
            sellers.GET("/:id/reviews", reviewHandler.ListSellerReviews)
            sellers.GET("/:id/balance", escrowHandler.GetSellerBalance)
            sellers.GET("/:id/trust-score", trustHandler.GetTrustScore)
            sellers.POST("/:id/trust-score/recompute", trustHandler.RecomputeTrustScore)
        }
    }

    return r
}
