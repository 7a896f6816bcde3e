package gormstore

import (
	"context"
	"errors"
	"strings"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"gorm.io/gorm"
)

type ParkingLotStore struct {
	db *gorm.DB
}

func NewParkingLotStore(db *gorm.DB) *ParkingLotStore {
	return &ParkingLotStore{db: db}
}

func (s *ParkingLotStore) Create(ctx context.Context, lot *models.ParkingLot) error {
	return s.db.WithContext(ctx).Create(lot).Error
}

func (s *ParkingLotStore) FindByID(ctx context.Context, id uint) (*models.ParkingLot, error) {
	var lot models.ParkingLot
	if err := s.db.WithContext(ctx).First(&lot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

func (s *ParkingLotStore) Find(ctx context.Context, filter store.ParkingLotFilter) ([]models.ParkingLot, error) {
	q := s.db.WithContext(ctx).Model(&models.ParkingLot{})

	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.NameContains != "" {
		q = q.Where("lower(name) LIKE ?", "%"+likePattern(filter.NameContains)+"%")
	}
	if filter.AddressContains != "" {
		q = q.Where("lower(address) LIKE ?", "%"+likePattern(filter.AddressContains)+"%")
	}
	if filter.MinAvailable != nil {
		q = q.Where("available_spaces >= ?", *filter.MinAvailable)
	}
	if filter.MinTotalSpaces != nil {
		q = q.Where("total_spaces >= ?", *filter.MinTotalSpaces)
	}
	if filter.MaxHourlyRate != nil {
		q = q.Where("hourly_rate <= ?", *filter.MaxHourlyRate)
	}
	if filter.MaxDailyRate != nil {
		q = q.Where("daily_rate <= ?", *filter.MaxDailyRate)
	}

	var lots []models.ParkingLot
	if err := q.Order("id").Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

func (s *ParkingLotStore) Save(ctx context.Context, lot *models.ParkingLot) error {
	return s.db.WithContext(ctx).Save(lot).Error
}

// Delete silently succeeds when the id does not exist.
func (s *ParkingLotStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.ParkingLot{}, id).Error
}

func likePattern(s string) string {
	return strings.ToLower(s)
}
