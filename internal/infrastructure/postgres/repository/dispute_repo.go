package repository

import (
	"errors"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute) error {
	disputeModel := mappers.ToGORMDispute(dispute)
	if err := r.db.Create(&disputeModel).Error; err != nil {
		return err
	}
	dispute.ID = disputeModel.ID
	return nil
}

func (r *DefaultDisputeRepository) GetDisputeByEscrowID(escrowID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.Model(&models.DisputeModel{}).Where("escrow_id = ?", escrowID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) ResolveDispute(disputeID string, resolution domain.DisputeResolution, resolvedAt time.Time) error {
	return r.db.Model(&models.DisputeModel{ID: disputeID}).Updates(map[string]interface{}{
		"resolution":  string(resolution),
		"resolved_at": resolvedAt,
	}).Error
}
