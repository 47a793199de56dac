package handlers

import (
    "net/http"
    "strconv"

    "github.com/gin-gonic/gin"
    "github.com/peertrade/escrow-service/internal/usecase"
    reviewdto "github.com/peertrade/escrow-service/internal/usecase/dto/review"
)

type ReviewHandler struct {
    reviewUsecase usecase.ReviewUsecase
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
    return &ReviewHandler{
        reviewUsecase: reviewUsecase,
    }
}

type addReviewRequest struct {
    BuyerID string `json:"buyer_id" binding:"required"`
    OrderID string `json:"order_id" binding:"required"`
    Rating  int    `json:"rating" binding:"required"`
    Comment string `json:"comment"`
}

// POST /reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
    var req addReviewRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    review, err := h.reviewUsecase.AddReview(c.Request.Context(), &reviewdto.AddReviewInput{
        BuyerID: req.BuyerID,
        OrderID: req.OrderID,
        Rating:  req.Rating,
        Comment: req.Comment,
    })
    if err != nil {
        respondError(c, err)
        return
    }

    c.JSON(http.StatusCreated, reviewdto.ToReviewOutput(review))
}

// GET /sellers/:id/reviews?page=1&page_size=20
func (h *ReviewHandler) ListSellerReviews(c *gin.Context) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

    reviews, total, err := h.reviewUsecase.ListReviews(c.Param("id"), page, pageSize)
    if err != nil {
        respondError(c, err)
        return
    }

    outputs := make([]*reviewdto.ReviewOutput, 0, len(reviews))
    for _, review := range reviews {
        outputs = append(outputs, reviewdto.ToReviewOutput(review))
    }

    c.JSON(http.StatusOK, reviewdto.ListReviewsOutput{
        Reviews:  outputs,
        Total:    total,
        Page:     page,
        PageSize: pageSize,
    })
}

// POST /reviews/:id/helpful
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
    if err := h.reviewUsecase.MarkHelpful(c.Param("id")); err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /reviews/:id/report
func (h *ReviewHandler) ReportReview(c *gin.Context) {
    if err := h.reviewUsecase.ReportReview(c.Param("id")); err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
