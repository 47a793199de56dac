package mappers

import (
	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID: model.ID,
		OrderID: model.OrderID,
		SellerID: model.SellerID,
		BuyerID: model.BuyerID,
		Rating: model.Rating,
		Comment: model.Comment,
		VerifiedPurchase: model.VerifiedPurchase,
		HelpfulCount: model.HelpfulCount,
		Reported: model.Reported,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID: review.ID,
		OrderID: review.OrderID,
		SellerID: review.SellerID,
		BuyerID: review.BuyerID,
		Rating: review.Rating,
		Comment: review.Comment,
		VerifiedPurchase: review.VerifiedPurchase,
		HelpfulCount: review.HelpfulCount,
		Reported: review.Reported,
		CreatedAt: review.CreatedAt,
	}
}
