package redisstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

type TransactionStore struct {
	col collection
}

func NewTransactionStore(client *redis.Client) *TransactionStore {
	return &TransactionStore{col: collection{client: client, prefix: "transaction"}}
}

func (s *TransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == 0 {
		id, err := s.col.nextID(ctx)
		if err != nil {
			return err
		}
		tx.ID = id
	}
	return s.col.put(ctx, tx.ID, tx)
}

func (s *TransactionStore) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.col.get(ctx, id, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *TransactionStore) Find(ctx context.Context, filter store.TransactionFilter) ([]models.Transaction, error) {
	ids, err := s.col.ids(ctx)
	if err != nil {
		return nil, err
	}
	txs := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		var tx models.Transaction
		if err := s.col.get(ctx, id, &tx); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue // removed between SMEMBERS and GET
			}
			return nil, err
		}
		if filter.Matches(&tx) {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (s *TransactionStore) Save(ctx context.Context, tx *models.Transaction) error {
	return s.col.put(ctx, tx.ID, tx)
}

func (s *TransactionStore) Delete(ctx context.Context, id uint) error {
	return s.col.remove(ctx, id)
}
