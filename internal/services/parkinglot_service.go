package services

import (
	"context"
	"errors"
	"time"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

var ErrParkingLotNotFound = errors.New("parking lot not found")
var ErrSpacesExceedTotal = errors.New("available spaces cannot exceed total spaces")

type ParkingLotService struct {
	lots store.ParkingLotStore
	now  func() time.Time
}

func NewParkingLotService(lots store.ParkingLotStore) *ParkingLotService {
	return &ParkingLotService{lots: lots, now: time.Now}
}

func (s *ParkingLotService) WithClock(now func() time.Time) *ParkingLotService {
	s.now = now
	return s
}

// CreateParkingLotInput carries the creation fields. Status and
// AvailableSpaces are optional: an unset status defaults to ACTIVE and
// unset available spaces default to the total.
type CreateParkingLotInput struct {
	Name            string
	Address         string
	TotalSpaces     int
	AvailableSpaces *int
	HourlyRate      float64
	DailyRate       float64
	Status          models.ParkingLotStatus
}

func (s *ParkingLotService) Create(ctx context.Context, in CreateParkingLotInput) (*models.ParkingLot, error) {
	status := in.Status
	if status == "" {
		status = models.ParkingLotActive
	}
	available := in.TotalSpaces
	if in.AvailableSpaces != nil {
		available = *in.AvailableSpaces
	}

	now := s.now()
	lot := &models.ParkingLot{
		Name:            in.Name,
		Address:         in.Address,
		TotalSpaces:     in.TotalSpaces,
		AvailableSpaces: available,
		HourlyRate:      in.HourlyRate,
		DailyRate:       in.DailyRate,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.lots.Create(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *ParkingLotService) GetByID(ctx context.Context, id uint) (*models.ParkingLot, error) {
	return s.get(ctx, id)
}

func (s *ParkingLotService) List(ctx context.Context, filter store.ParkingLotFilter) ([]models.ParkingLot, error) {
	return s.lots.Find(ctx, filter)
}

// UpdateParkingLotInput is the full field set for a generic update.
type UpdateParkingLotInput struct {
	Name            string
	Address         string
	TotalSpaces     int
	AvailableSpaces int
	HourlyRate      float64
	DailyRate       float64
	Status          models.ParkingLotStatus
}

// Update overwrites every field from the supplied record. Note that
// the available<=total check only guards UpdateAvailableSpaces; this
// path accepts any combination, matching the system it replaces.
func (s *ParkingLotService) Update(ctx context.Context, id uint, in UpdateParkingLotInput) (*models.ParkingLot, error) {
	lot, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	lot.Name = in.Name
	lot.Address = in.Address
	lot.TotalSpaces = in.TotalSpaces
	lot.AvailableSpaces = in.AvailableSpaces
	lot.HourlyRate = in.HourlyRate
	lot.DailyRate = in.DailyRate
	lot.Status = in.Status
	lot.UpdatedAt = s.now()

	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *ParkingLotService) UpdateStatus(ctx context.Context, id uint, status models.ParkingLotStatus) (*models.ParkingLot, error) {
	lot, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	lot.Status = status
	lot.UpdatedAt = s.now()

	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *ParkingLotService) UpdateAvailableSpaces(ctx context.Context, id uint, available int) (*models.ParkingLot, error) {
	lot, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if available > lot.TotalSpaces {
		return nil, ErrSpacesExceedTotal
	}

	lot.AvailableSpaces = available
	lot.UpdatedAt = s.now()

	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *ParkingLotService) Delete(ctx context.Context, id uint) error {
	err := s.lots.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrParkingLotNotFound
	}
	return err
}

func (s *ParkingLotService) get(ctx context.Context, id uint) (*models.ParkingLot, error) {
	lot, err := s.lots.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrParkingLotNotFound
		}
		return nil, err
	}
	return lot, nil
}
