package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/peertrade/escrow-service/internal/domain"
    escrowdto "github.com/peertrade/escrow-service/internal/usecase/dto/escrow"
    "github.com/peertrade/escrow-service/internal/usecase/escrow"
)

type EscrowHandler struct {
    escrowUsecase escrow.Usecase
}

func NewEscrowHandler(escrowUsecase escrow.Usecase) *EscrowHandler {
    return &EscrowHandler{
        escrowUsecase: escrowUsecase,
    }
}

type createEscrowRequest struct {
    OrderID                   string  `json:"order_id" binding:"required"`
    BuyerID                   string  `json:"buyer_id" binding:"required"`
    SellerID                  string  `json:"seller_id" binding:"required"`
    Amount                    float64 `json:"amount" binding:"required"`
    Currency                  string  `json:"currency" binding:"required"`
    AutoReleaseAfterDays      int     `json:"auto_release_after_days"`
    RequiresBuyerConfirmation bool    `json:"requires_buyer_confirmation"`
}

// POST /escrows
func (h *EscrowHandler) CreateEscrow(c *gin.Context) {
    var req createEscrowRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    created, err := h.escrowUsecase.CreateEscrow(&escrowdto.CreateEscrowInput{
        OrderID:                   req.OrderID,
        BuyerID:                   req.BuyerID,
        SellerID:                  req.SellerID,
        Amount:                    req.Amount,
        Currency:                  req.Currency,
        AutoReleaseAfterDays:      req.AutoReleaseAfterDays,
        RequiresBuyerConfirmation: req.RequiresBuyerConfirmation,
    })
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusCreated, escrowdto.ToEscrowOutput(created))
}

type initiatePaymentRequest struct {
    PaymentMethod string `json:"payment_method" binding:"required"`
}

// POST /escrows/:id/pay
func (h *EscrowHandler) InitiatePayment(c *gin.Context) {
    var req initiatePaymentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    funded, err := h.escrowUsecase.InitiatePayment(c.Request.Context(), &escrowdto.InitiatePaymentInput{
        EscrowID:      c.Param("id"),
        PaymentMethod: req.PaymentMethod,
    })
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(funded))
}

type fundEscrowRequest struct {
    GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
}

// POST /escrows/:id/fund
//
// Webhook entry point for gateways that confirm captures out of band.
// Replays with the same gateway payment ID are acknowledged, not rejected.
func (h *EscrowHandler) FundEscrow(c *gin.Context) {
    var req fundEscrowRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    funded, err := h.escrowUsecase.Fund(c.Request.Context(), c.Param("id"), req.GatewayPaymentID)
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(funded))
}

type confirmDeliveryRequest struct {
    ActorID string `json:"actor_id" binding:"required"`
}

// POST /escrows/:id/confirm-delivery
func (h *EscrowHandler) ConfirmDelivery(c *gin.Context) {
    var req confirmDeliveryRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    released, err := h.escrowUsecase.ConfirmDelivery(c.Request.Context(), c.Param("id"), req.ActorID)
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(released))
}

type openDisputeRequest struct {
    ActorID string `json:"actor_id" binding:"required"`
    Reason  string `json:"reason" binding:"required"`
}

// POST /escrows/:id/dispute
func (h *EscrowHandler) OpenDispute(c *gin.Context) {
    var req openDisputeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    disputed, err := h.escrowUsecase.OpenDispute(c.Request.Context(), &escrowdto.OpenDisputeInput{
        EscrowID: c.Param("id"),
        ActorID:  req.ActorID,
        Reason:   req.Reason,
    })
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(disputed))
}

type resolveDisputeRequest struct {
    Resolution string `json:"resolution" binding:"required"`
}

// POST /escrows/:id/dispute/resolve
func (h *EscrowHandler) ResolveDispute(c *gin.Context) {
    var req resolveDisputeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    resolved, err := h.escrowUsecase.ResolveDispute(c.Request.Context(), c.Param("id"), domain.DisputeResolution(req.Resolution))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(resolved))
}

type refundEscrowRequest struct {
    Reason string `json:"reason"`
}

// POST /escrows/:id/refund
func (h *EscrowHandler) RefundEscrow(c *gin.Context) {
    var req refundEscrowRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    refunded, err := h.escrowUsecase.Refund(c.Request.Context(), c.Param("id"), req.Reason)
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(refunded))
}

// POST /escrows/:id/cancel
func (h *EscrowHandler) CancelEscrow(c *gin.Context) {
    cancelled, err := h.escrowUsecase.Cancel(c.Request.Context(), c.Param("id"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(cancelled))
}

// GET /escrows/:id
func (h *EscrowHandler) GetEscrow(c *gin.Context) {
    found, err := h.escrowUsecase.GetEscrowByID(c.Param("id"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(found))
}

// GET /orders/:orderID/escrow
func (h *EscrowHandler) GetEscrowByOrder(c *gin.Context) {
    found, err := h.escrowUsecase.GetEscrowByOrderID(c.Param("orderID"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, escrowdto.ToEscrowOutput(found))
}

// GET /escrows/:id/dispute
func (h *EscrowHandler) GetDispute(c *gin.Context) {
    dispute, err := h.escrowUsecase.GetDisputeByEscrowID(c.Param("id"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "dispute_id": dispute.ID,
        "escrow_id":  dispute.EscrowID,
        "opened_by":  dispute.OpenedBy,
        "reason":     dispute.Reason,
        "resolution": string(dispute.Resolution),
        "opened_at":  dispute.OpenedAt,
        "resolved_at": dispute.ResolvedAt,
    })
}

// GET /sellers/:id/balance
func (h *EscrowHandler) GetSellerBalance(c *gin.Context) {
    balance, err := h.escrowUsecase.GetSellerBalance(c.Param("id"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "seller_id": c.Param("id"),
        "balance":   balance,
    })
}
