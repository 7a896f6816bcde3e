package redisstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

type ParkingLotStore struct {
	col collection
}

func NewParkingLotStore(client *redis.Client) *ParkingLotStore {
	return &ParkingLotStore{col: collection{client: client, prefix: "parking_lot"}}
}

func (s *ParkingLotStore) Create(ctx context.Context, lot *models.ParkingLot) error {
	if lot.ID == 0 {
		id, err := s.col.nextID(ctx)
		if err != nil {
			return err
		}
		lot.ID = id
	}
	return s.col.put(ctx, lot.ID, lot)
}

func (s *ParkingLotStore) FindByID(ctx context.Context, id uint) (*models.ParkingLot, error) {
	var lot models.ParkingLot
	if err := s.col.get(ctx, id, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (s *ParkingLotStore) Find(ctx context.Context, filter store.ParkingLotFilter) ([]models.ParkingLot, error) {
	ids, err := s.col.ids(ctx)
	if err != nil {
		return nil, err
	}
	lots := make([]models.ParkingLot, 0, len(ids))
	for _, id := range ids {
		var lot models.ParkingLot
		if err := s.col.get(ctx, id, &lot); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if filter.Matches(&lot) {
			lots = append(lots, lot)
		}
	}
	return lots, nil
}

func (s *ParkingLotStore) Save(ctx context.Context, lot *models.ParkingLot) error {
	return s.col.put(ctx, lot.ID, lot)
}

func (s *ParkingLotStore) Delete(ctx context.Context, id uint) error {
	return s.col.remove(ctx, id)
}
