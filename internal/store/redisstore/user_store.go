package redisstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

type UserStore struct {
	col collection
}

func NewUserStore(client *redis.Client) *UserStore {
	return &UserStore{col: collection{client: client, prefix: "user"}}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		id, err := s.col.nextID(ctx)
		if err != nil {
			return err
		}
		user.ID = id
	}
	return s.col.put(ctx, user.ID, user)
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.col.get(ctx, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, func(u *models.User) bool { return u.Username == username })
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, func(u *models.User) bool { return u.Email == email })
}

func (s *UserStore) Find(ctx context.Context, filter store.UserFilter) ([]models.User, error) {
	ids, err := s.col.ids(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		var user models.User
		if err := s.col.get(ctx, id, &user); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if filter.Matches(&user) {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *UserStore) Save(ctx context.Context, user *models.User) error {
	return s.col.put(ctx, user.ID, user)
}

func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.col.remove(ctx, id)
}

func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := s.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserStore) findOne(ctx context.Context, match func(*models.User) bool) (*models.User, error) {
	ids, err := s.col.ids(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		var user models.User
		if err := s.col.get(ctx, id, &user); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if match(&user) {
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}
