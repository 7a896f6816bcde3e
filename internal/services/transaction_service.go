package services

import (
	"context"
	"errors"
	"time"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"gopkg.in/guregu/null.v4"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService owns the parking transaction lifecycle: a vehicle
// enters (Open), exits and settles (Complete) or the record is voided
// (Cancel). Revenue figures are derived from completed transactions.
type TransactionService struct {
	transactions store.TransactionStore
	lots         store.ParkingLotStore
	now          func() time.Time
}

func NewTransactionService(transactions store.TransactionStore, lots store.ParkingLotStore) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		lots:         lots,
		now:          time.Now,
	}
}

// WithClock replaces the wall clock, used by tests to freeze time.
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// OpenTransactionInput carries the fields recorded at vehicle entry.
type OpenTransactionInput struct {
	ParkingLotID  uint
	UserID        null.Int
	LicensePlate  string
	EntryTime     null.Time
	Status        models.TransactionStatus // defaults to PENDING
	PaymentMethod models.PaymentMethod
}

// Open records a vehicle entering a parking lot. The referenced lot
// must exist; everything else is accepted as supplied.
func (s *TransactionService) Open(ctx context.Context, in OpenTransactionInput) (*models.Transaction, error) {
	if _, err := s.lots.FindByID(ctx, in.ParkingLotID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrParkingLotNotFound
		}
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.TransactionPending
	}

	now := s.now()
	tx := &models.Transaction{
		ParkingLotID:  in.ParkingLotID,
		UserID:        in.UserID,
		LicensePlate:  in.LicensePlate,
		EntryTime:     in.EntryTime,
		Status:        status,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Complete settles a transaction: exit time and amount are recorded,
// the status becomes COMPLETED and the duration is derived from the
// entry time when one is set. The duration is whole minutes between
// entry and exit divided by 60, and goes negative without complaint
// when the exit precedes the entry.
func (s *TransactionService) Complete(ctx context.Context, id uint, exitTime time.Time, amount float64) (*models.Transaction, error) {
	tx, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	tx.ExitTime = null.TimeFrom(exitTime)
	tx.Amount = null.FloatFrom(amount)
	tx.Status = models.TransactionCompleted
	if tx.EntryTime.Valid {
		minutes := int64(exitTime.Sub(tx.EntryTime.Time) / time.Minute)
		tx.DurationHours = null.FloatFrom(float64(minutes) / 60.0)
	}
	tx.UpdatedAt = s.now()

	if err := s.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Cancel voids a transaction. Only the status changes; exit time,
// amount and duration keep whatever they held. Calling it twice leaves
// the record in the same state as calling it once.
func (s *TransactionService) Cancel(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	tx.Status = models.TransactionCancelled
	tx.UpdatedAt = s.now()

	if err := s.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// UpdateTransactionInput is the full set of mutable fields.
type UpdateTransactionInput struct {
	ParkingLotID  uint
	UserID        null.Int
	LicensePlate  string
	EntryTime     null.Time
	ExitTime      null.Time
	DurationHours null.Float
	Amount        null.Float
	Status        models.TransactionStatus
	PaymentMethod models.PaymentMethod
}

// Update overwrites every mutable field from the supplied record. This
// is the unchecked escape hatch next to Complete/Cancel: it bypasses
// the intended status transitions and is the only way to reach
// REFUNDED.
func (s *TransactionService) Update(ctx context.Context, id uint, in UpdateTransactionInput) (*models.Transaction, error) {
	tx, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	tx.ParkingLotID = in.ParkingLotID
	tx.UserID = in.UserID
	tx.LicensePlate = in.LicensePlate
	tx.EntryTime = in.EntryTime
	tx.ExitTime = in.ExitTime
	tx.DurationHours = in.DurationHours
	tx.Amount = in.Amount
	tx.Status = in.Status
	tx.PaymentMethod = in.PaymentMethod
	tx.UpdatedAt = s.now()

	if err := s.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete removes the record, passing the backend's missing-id behavior
// through: the relational store no-ops, the document store reports
// ErrTransactionNotFound.
func (s *TransactionService) Delete(ctx context.Context, id uint) error {
	err := s.transactions.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}

func (s *TransactionService) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	return s.get(ctx, id)
}

func (s *TransactionService) List(ctx context.Context, filter store.TransactionFilter) ([]models.Transaction, error) {
	return s.transactions.Find(ctx, filter)
}

// Ongoing returns transactions whose exit time is unset.
func (s *TransactionService) Ongoing(ctx context.Context) ([]models.Transaction, error) {
	return s.transactions.Find(ctx, store.TransactionFilter{OngoingOnly: true})
}

// RevenueBetween sums the amounts of COMPLETED transactions whose
// entry time falls in the half-open window [start, end). An empty
// match yields zero, never an error.
func (s *TransactionService) RevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	completed := models.TransactionCompleted
	txs, err := s.transactions.Find(ctx, store.TransactionFilter{
		Status:      &completed,
		EntryFrom:   &start,
		EntryBefore: &end,
	})
	if err != nil {
		return 0, err
	}
	return sumAmounts(txs), nil
}

// TodayRevenue covers [start of the current calendar day, now).
func (s *TransactionService) TodayRevenue(ctx context.Context) (float64, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.RevenueBetween(ctx, start, now)
}

// MonthRevenue covers [first of the current month at 00:00, now).
func (s *TransactionService) MonthRevenue(ctx context.Context) (float64, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return s.RevenueBetween(ctx, start, now)
}

// RevenueByParkingLot sums COMPLETED amounts for one lot, unwindowed.
func (s *TransactionService) RevenueByParkingLot(ctx context.Context, lotID uint) (float64, error) {
	completed := models.TransactionCompleted
	txs, err := s.transactions.Find(ctx, store.TransactionFilter{
		Status:       &completed,
		ParkingLotID: &lotID,
	})
	if err != nil {
		return 0, err
	}
	return sumAmounts(txs), nil
}

func (s *TransactionService) get(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func sumAmounts(txs []models.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Amount.Valid {
			total += tx.Amount.Float64
		}
	}
	return total
}
