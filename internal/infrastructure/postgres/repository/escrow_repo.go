package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/peertrade/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultEscrowRepository struct {
	DB *gorm.DB
}

func NewDefaultEscrowRepository(db *gorm.DB) *DefaultEscrowRepository {
	return &DefaultEscrowRepository{DB: db}
}

func (r *DefaultEscrowRepository) CreateEscrow(escrow *domain.Escrow) error {
	escrowModel := mappers.ToGORMEscrow(escrow)
	if err := r.DB.Create(escrowModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEscrow
		}
		return err
	}
	return nil
}

func (r *DefaultEscrowRepository) GetEscrowByID(escrowID string) (*domain.Escrow, error) {
	var escrowModel models.EscrowModel
	if err := r.DB.First(&escrowModel, "id = ?", escrowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEscrowNotFound
		}
		return nil, err
	}

	return mappers.ToDomainEscrow(&escrowModel), nil
}

func (r *DefaultEscrowRepository) GetEscrowByOrderID(orderID string) (*domain.Escrow, error) {
	var escrowModel models.EscrowModel
	if err := r.DB.First(&escrowModel, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainEscrow(&escrowModel), nil
}

// SaveTransition is the critical section of the ledger: the escrow row is
// updated only while its state still matches one of fromStates, and the seller
// balance change rides the same transaction. A guard miss reloads the row and
// reports the authoritative state.
func (r *DefaultEscrowRepository) SaveTransition(escrow *domain.Escrow, fromStates []domain.EscrowState, balanceDelta float64) error {
	from := make([]string, len(fromStates))
	for i, s := range fromStates {
		from[i] = string(s)
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		escrowModel := mappers.ToGORMEscrow(escrow)
		res := tx.Model(&models.EscrowModel{}).
			Where("id = ? AND state IN ?", escrow.ID, from).
			Updates(map[string]interface{}{
				"state": 				 escrowModel.State,
				"gateway_payment_id": 	 escrowModel.GatewayPaymentID,
				"funded_at": 			 escrowModel.FundedAt,
				"delivery_confirmed_at": escrowModel.DeliveryConfirmedAt,
				"disputed_at": 			 escrowModel.DisputedAt,
				"resolved_at": 			 escrowModel.ResolvedAt,
				"auto_release_at": 		 escrowModel.AutoReleaseAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.EscrowModel
			if err := tx.First(&current, "id = ?", escrow.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrEscrowNotFound
				}
				return err
			}
			return domain.StateConflict(domain.ErrInvalidTransition, domain.EscrowState(current.State))
		}

		if balanceDelta != 0 {
			balance := models.SellerBalanceModel{
				SellerID: escrow.SellerID,
				Balance:  balanceDelta,
				Currency: escrow.Currency,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "seller_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"balance":    gorm.Expr("seller_balances.balance + ?", balanceDelta),
					"updated_at": time.Now(),
				}),
			}).Create(&balance).Error; err != nil {
				return fmt.Errorf("seller balance update: %w", err)
			}
		}

		return nil
	})
}

func (r *DefaultEscrowRepository) FindDueForAutoRelease(now time.Time) ([]*domain.Escrow, error) {
	var escrowModels []models.EscrowModel
	if err := r.DB.Model(&models.EscrowModel{}).
		Where("state = ?", string(domain.EscrowFunded)).
		Where("auto_release_at <= ?", now).
		Where("disputed_at IS NULL").
		Find(&escrowModels).Error; err != nil {
			return nil, err
		}
	escrows := make([]*domain.Escrow, len(escrowModels))
	for i, escrowModel := range escrowModels {
		escrows[i] = mappers.ToDomainEscrow(&escrowModel)
	}

	return escrows, nil
}

func (r *DefaultEscrowRepository) SellerEscrowStats(sellerID string) (*domain.SellerEscrowStats, error) {
	var stats domain.SellerEscrowStats

	baseQuery := func() *gorm.DB {
		return r.DB.Model(&models.EscrowModel{}).Where("seller_id = ?", sellerID)
	}

	// Escrows that ever held real funds: everything but CREATED/CANCELLED.
	if err := baseQuery().
		Where("state NOT IN ?", []string{string(domain.EscrowCreated), string(domain.EscrowCancelled)}).
		Count(&stats.FundedOrLater).Error; err != nil {
		return nil, fmt.Errorf("count funded escrows: %w", err)
	}

	if err := baseQuery().
		Where("state = ?", string(domain.EscrowReleased)).
		Count(&stats.Released).Error; err != nil {
		return nil, fmt.Errorf("count released escrows: %w", err)
	}

	if err := baseQuery().
		Where("disputed_at IS NOT NULL").
		Count(&stats.Disputed).Error; err != nil {
		return nil, fmt.Errorf("count disputed escrows: %w", err)
	}

	return &stats, nil
}

func (r *DefaultEscrowRepository) GetSellerBalance(sellerID string) (float64, error) {
	var balanceModel models.SellerBalanceModel
	if err := r.DB.First(&balanceModel, "seller_id = ?", sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return balanceModel.Balance, nil
}
