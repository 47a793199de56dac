package repository

import (
	"errors"
	"fmt"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReviewRepository struct {
	db *gorm.DB
}

func NewDefaultReviewRepository(db *gorm.DB) *DefaultReviewRepository {
	return &DefaultReviewRepository{db: db}
}

func (r *DefaultReviewRepository) CreateReview(review *domain.Review) error {
	reviewModel := mappers.ToGORMReview(review)
	if err := r.db.Create(reviewModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *DefaultReviewRepository) GetReviewByOrderID(orderID string) (*domain.Review, error) {
	var reviewModel models.ReviewModel
	if err := r.db.Model(&models.ReviewModel{}).Where("order_id = ?", orderID).First(&reviewModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	return mappers.ToDomainReview(&reviewModel), nil
}

func (r *DefaultReviewRepository) ListReviewsBySeller(sellerID string, page, pageSize int) ([]*domain.Review, int64, error) {
	query := r.db.Model(&models.ReviewModel{}).Where("seller_id = ?", sellerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	offset := (page - 1) * pageSize
	var reviewModels []models.ReviewModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find review models: %w", err)
	}

	reviews := make([]*domain.Review, len(reviewModels))
	for i, reviewModel := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModel)
	}

	return reviews, total, nil
}

func (r *DefaultReviewRepository) SellerRatingStats(sellerID string) (*domain.RatingStats, error) {
	type ratingAgg struct {
		Count   int64
		Average float64
	}
	var agg ratingAgg
	if err := r.db.Model(&models.ReviewModel{}).
		Where("seller_id = ?", sellerID).
		Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as average").
		Scan(&agg).Error; err != nil {
		return nil, fmt.Errorf("rating agg: %w", err)
	}

	return &domain.RatingStats{Count: agg.Count, Average: agg.Average}, nil
}

func (r *DefaultReviewRepository) IncrementHelpful(reviewID string) error {
	res := r.db.Model(&models.ReviewModel{}).
		Where("id = ?", reviewID).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *DefaultReviewRepository) MarkReported(reviewID string) error {
	res := r.db.Model(&models.ReviewModel{}).
		Where("id = ?", reviewID).
		Update("reported", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
