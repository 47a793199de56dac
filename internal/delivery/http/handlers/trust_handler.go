package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/peertrade/escrow-service/internal/usecase"
    trustdto "github.com/peertrade/escrow-service/internal/usecase/dto/trust"
)

type TrustHandler struct {
    trustUsecase usecase.TrustUsecase
}

func NewTrustHandler(trustUsecase usecase.TrustUsecase) *TrustHandler {
    return &TrustHandler{
        trustUsecase: trustUsecase,
    }
}

// GET /sellers/:id/trust-score
func (h *TrustHandler) GetTrustScore(c *gin.Context) {
    score, err := h.trustUsecase.GetTrustScore(c.Request.Context(), c.Param("id"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, trustdto.ToTrustScoreOutput(score))
}

// POST /sellers/:id/trust-score/recompute
func (h *TrustHandler) RecomputeTrustScore(c *gin.Context) {
    score, err := h.trustUsecase.Recompute(c.Request.Context(), c.Param("id"))
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusOK, trustdto.ToTrustScoreOutput(score))
}
