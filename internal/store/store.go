// Package store defines the persistence gateway the services are
// programmed against. Two adapters implement it: gormstore (relational)
// and redisstore (document-oriented).
package store

import (
	"context"
	"errors"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
	Find(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)
	Save(ctx context.Context, tx *models.Transaction) error
	// Delete removes the record. Missing-id behavior differs between
	// backends: the relational adapter no-ops, the document adapter
	// returns ErrNotFound. Both behaviors are inherited from the
	// backends this replaces and are preserved as-is.
	Delete(ctx context.Context, id uint) error
}

type ParkingLotStore interface {
	Create(ctx context.Context, lot *models.ParkingLot) error
	FindByID(ctx context.Context, id uint) (*models.ParkingLot, error)
	Find(ctx context.Context, filter ParkingLotFilter) ([]models.ParkingLot, error)
	Save(ctx context.Context, lot *models.ParkingLot) error
	Delete(ctx context.Context, id uint) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Find(ctx context.Context, filter UserFilter) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Stores bundles the three gateways of one backend so the router and
// main can pass them around as a unit.
type Stores struct {
	Transactions TransactionStore
	ParkingLots  ParkingLotStore
	Users        UserStore
}
