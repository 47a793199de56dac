package repository

import (
	"errors"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTrustScoreRepository struct {
	db *gorm.DB
}

func NewDefaultTrustScoreRepository(db *gorm.DB) *DefaultTrustScoreRepository {
	return &DefaultTrustScoreRepository{db: db}
}

func (r *DefaultTrustScoreRepository) GetTrustScore(sellerID string) (*domain.TrustScore, error) {
	var scoreModel models.TrustScoreModel
	if err := r.db.First(&scoreModel, "seller_id = ?", sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &domain.TrustScore{
		SellerID: scoreModel.SellerID,
		Value: scoreModel.Value,
		ComputedAt: scoreModel.ComputedAt,
		Stale: scoreModel.Stale,
	}, nil
}

// SaveTrustScore replaces the whole row. There is no partial mutation, so
// racing recomputes cannot lose updates.
func (r *DefaultTrustScoreRepository) SaveTrustScore(score *domain.TrustScore) error {
	scoreModel := models.TrustScoreModel{
		SellerID: score.SellerID,
		Value: score.Value,
		Stale: score.Stale,
		ComputedAt: score.ComputedAt,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "seller_id"}},
		UpdateAll: true,
	}).Create(&scoreModel).Error
}

func (r *DefaultTrustScoreRepository) MarkStale(sellerID string) error {
	scoreModel := models.TrustScoreModel{
		SellerID: sellerID,
		Stale: true,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "seller_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"stale": true}),
	}).Create(&scoreModel).Error
}
