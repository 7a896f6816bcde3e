package gormstore

import (
	"context"
	"errors"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"gorm.io/gorm"
)

type TransactionStore struct {
	db *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

func (s *TransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

func (s *TransactionStore) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (s *TransactionStore) Find(ctx context.Context, filter store.TransactionFilter) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})

	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *filter.PaymentMethod)
	}
	if filter.ParkingLotID != nil {
		q = q.Where("parking_lot_id = ?", *filter.ParkingLotID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.LicensePlate != "" {
		q = q.Where("lower(license_plate) LIKE ?", "%"+likePattern(filter.LicensePlate)+"%")
	}
	if filter.EntryFrom != nil {
		q = q.Where("entry_time >= ?", *filter.EntryFrom)
	}
	if filter.EntryBefore != nil {
		q = q.Where("entry_time < ?", *filter.EntryBefore)
	}
	if filter.ExitFrom != nil {
		q = q.Where("exit_time >= ?", *filter.ExitFrom)
	}
	if filter.ExitBefore != nil {
		q = q.Where("exit_time < ?", *filter.ExitBefore)
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at < ?", *filter.CreatedBefore)
	}
	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.OngoingOnly {
		q = q.Where("exit_time IS NULL")
	}

	var txs []models.Transaction
	if err := q.Order("id").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *TransactionStore) Save(ctx context.Context, tx *models.Transaction) error {
	return s.db.WithContext(ctx).Save(tx).Error
}

// Delete silently succeeds when the id does not exist, matching the
// relational backend this adapter replaces.
func (s *TransactionStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Transaction{}, id).Error
}
