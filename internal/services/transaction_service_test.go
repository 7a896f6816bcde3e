package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"github.com/kensudogit/docomo-smart-parking/internal/store/gormstore"
	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v4"
	"gorm.io/gorm"
)

func setupTestStores(t *testing.T) store.Stores {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.ParkingLot{}, &models.Transaction{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return store.Stores{
		Transactions: gormstore.NewTransactionStore(db),
		ParkingLots:  gormstore.NewParkingLotStore(db),
		Users:        gormstore.NewUserStore(db),
	}
}

func seedLot(t *testing.T, stores store.Stores) *models.ParkingLot {
	t.Helper()

	lot := &models.ParkingLot{
		Name:            "Central Lot",
		Address:         "1-2-3 Chiyoda",
		TotalSpaces:     100,
		AvailableSpaces: 100,
		HourlyRate:      300,
		DailyRate:       2000,
		Status:          models.ParkingLotActive,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := stores.ParkingLots.Create(context.Background(), lot); err != nil {
		t.Fatalf("failed to seed parking lot: %v", err)
	}
	return lot
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestOpenDefaultsToPending(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots).WithClock(fixedClock(now))

	tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID:  lot.ID,
		LicensePlate:  "ABC-123",
		EntryTime:     null.TimeFrom(now),
		PaymentMethod: models.PaymentCreditCard,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionPending, tx.Status)
	assert.False(t, tx.ExitTime.Valid)
	assert.False(t, tx.Amount.Valid)
	assert.False(t, tx.DurationHours.Valid)
	assert.Equal(t, now, tx.CreatedAt)
	assert.Equal(t, now, tx.UpdatedAt)
}

func TestOpenUnknownParkingLot(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	_, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: 999,
		LicensePlate: "ABC-123",
	})
	assert.ErrorIs(t, err, services.ErrParkingLotNotFound)
}

func TestCompleteDerivesDuration(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	entry := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		exit     time.Time
		expected float64
	}{
		{"two hours", entry.Add(2 * time.Hour), 2.0},
		{"ninety minutes", entry.Add(90 * time.Minute), 1.5},
		{"sub-minute truncated", entry.Add(59 * time.Second), 0.0},
		{"negative not rejected", entry.Add(-30 * time.Minute), -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
				ParkingLotID:  lot.ID,
				LicensePlate:  "ABC-123",
				EntryTime:     null.TimeFrom(entry),
				PaymentMethod: models.PaymentCash,
			})
			assert.NoError(t, err)

			completed, err := svc.Complete(context.Background(), tx.ID, tt.exit, 1000)
			assert.NoError(t, err)
			assert.Equal(t, models.TransactionCompleted, completed.Status)
			assert.True(t, completed.DurationHours.Valid)
			assert.Equal(t, tt.expected, completed.DurationHours.Float64)
			assert.Equal(t, 1000.0, completed.Amount.Float64)
		})
	}
}

func TestCompleteWithoutEntryTimeLeavesDurationUnset(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID,
		LicensePlate: "NO-ENTRY",
	})
	assert.NoError(t, err)

	completed, err := svc.Complete(context.Background(), tx.ID, time.Now(), 500)
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, completed.Status)
	assert.False(t, completed.DurationHours.Valid)
}

func TestCompleteOverridesPriorStatus(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID,
		LicensePlate: "ABC-123",
		EntryTime:    null.TimeFrom(time.Now()),
	})
	assert.NoError(t, err)

	_, err = svc.Cancel(context.Background(), tx.ID)
	assert.NoError(t, err)

	// Complete always sets COMPLETED, whatever the record held before.
	completed, err := svc.Complete(context.Background(), tx.ID, time.Now(), 100)
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, completed.Status)
}

func TestCompleteUnknownIDWritesNothing(t *testing.T) {
	stores := setupTestStores(t)
	seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	_, err := svc.Complete(context.Background(), 999, time.Now(), 100)
	assert.ErrorIs(t, err, services.ErrTransactionNotFound)

	txs, err := svc.List(context.Background(), store.TransactionFilter{})
	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestCancelIsIdempotent(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots).WithClock(fixedClock(now))

	entry := now.Add(-time.Hour)
	tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID:  lot.ID,
		LicensePlate:  "ABC-123",
		EntryTime:     null.TimeFrom(entry),
		PaymentMethod: models.PaymentCash,
	})
	assert.NoError(t, err)

	first, err := svc.Cancel(context.Background(), tx.ID)
	assert.NoError(t, err)
	second, err := svc.Cancel(context.Background(), tx.ID)
	assert.NoError(t, err)

	assert.Equal(t, models.TransactionCancelled, first.Status)
	assert.Equal(t, first.Status, second.Status)
	// Everything besides the status stays put.
	assert.False(t, second.ExitTime.Valid)
	assert.False(t, second.Amount.Valid)
	assert.False(t, second.DurationHours.Valid)
	assert.Equal(t, entry.Unix(), second.EntryTime.Time.Unix())
}

func TestUpdateIsUncheckedEscapeHatch(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID,
		LicensePlate: "ABC-123",
		EntryTime:    null.TimeFrom(time.Now()),
	})
	assert.NoError(t, err)

	_, err = svc.Complete(context.Background(), tx.ID, time.Now(), 800)
	assert.NoError(t, err)

	// REFUNDED has no dedicated transition; the generic update is the
	// only way there.
	updated, err := svc.Update(context.Background(), tx.ID, services.UpdateTransactionInput{
		ParkingLotID:  lot.ID,
		LicensePlate:  "ABC-123",
		Status:        models.TransactionRefunded,
		PaymentMethod: models.PaymentCreditCard,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionRefunded, updated.Status)
	// The overwrite clears fields that were not resupplied.
	assert.False(t, updated.ExitTime.Valid)
	assert.False(t, updated.Amount.Valid)
}

func TestUpdateUnknownID(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	_, err := svc.Update(context.Background(), 42, services.UpdateTransactionInput{
		ParkingLotID: lot.ID,
		Status:       models.TransactionPending,
	})
	assert.ErrorIs(t, err, services.ErrTransactionNotFound)
}

func TestDeleteMissingIDSilentOnRelationalBackend(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	// The relational adapter no-ops on a missing id; the document
	// adapter reports not-found (covered in redisstore tests).
	err := svc.Delete(context.Background(), 12345)
	assert.NoError(t, err)
}

func TestOngoingQuery(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	open, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID:  lot.ID,
		LicensePlate:  "XYZ-789",
		EntryTime:     null.TimeFrom(time.Now()),
		PaymentMethod: models.PaymentCash,
	})
	assert.NoError(t, err)

	closed, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID,
		LicensePlate: "ABC-123",
		EntryTime:    null.TimeFrom(time.Now()),
	})
	assert.NoError(t, err)
	_, err = svc.Complete(context.Background(), closed.ID, time.Now(), 300)
	assert.NoError(t, err)

	ongoing, err := svc.Ongoing(context.Background())
	assert.NoError(t, err)
	assert.Len(t, ongoing, 1)
	assert.Equal(t, open.ID, ongoing[0].ID)
	assert.True(t, ongoing[0].Ongoing())
}

func TestRevenueOnlyCountsCompletedInWindow(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots).WithClock(fixedClock(now))

	entry := now.Add(-4 * time.Hour)

	completed, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID, LicensePlate: "COMPLETED", EntryTime: null.TimeFrom(entry),
	})
	assert.NoError(t, err)
	_, err = svc.Complete(context.Background(), completed.ID, entry.Add(time.Hour), 1000)
	assert.NoError(t, err)

	// PENDING, amount unset.
	_, err = svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID, LicensePlate: "PENDING", EntryTime: null.TimeFrom(entry),
	})
	assert.NoError(t, err)

	// CANCELLED with a stored amount, which must not count.
	cancelled, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID: lot.ID, LicensePlate: "CANCELLED", EntryTime: null.TimeFrom(entry),
	})
	assert.NoError(t, err)
	_, err = svc.Update(context.Background(), cancelled.ID, services.UpdateTransactionInput{
		ParkingLotID: lot.ID,
		LicensePlate: "CANCELLED",
		EntryTime:    null.TimeFrom(entry),
		Amount:       null.FloatFrom(500),
		Status:       models.TransactionCancelled,
	})
	assert.NoError(t, err)

	revenue, err := svc.TodayRevenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, revenue)

	monthly, err := svc.MonthRevenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, monthly)
}

func TestRevenueWindowIsHalfOpen(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	seed := func(plate string, entry time.Time, amount float64) {
		tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
			ParkingLotID: lot.ID, LicensePlate: plate, EntryTime: null.TimeFrom(entry),
		})
		assert.NoError(t, err)
		_, err = svc.Complete(context.Background(), tx.ID, entry.Add(time.Hour), amount)
		assert.NoError(t, err)
	}

	// The start is inclusive, the end exclusive.
	seed("AT-START", start, 100)
	seed("INSIDE", start.Add(12*time.Hour), 200)
	seed("AT-END", end, 400)
	seed("BEFORE", start.Add(-time.Minute), 800)
	seed("AFTER", end.Add(time.Minute), 1600)

	revenue, err := svc.RevenueBetween(context.Background(), start, end)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, revenue)
}

func TestRevenueEmptyWindowIsZero(t *testing.T) {
	stores := setupTestStores(t)
	seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	revenue, err := svc.RevenueBetween(context.Background(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, revenue)
}

func TestRevenueByParkingLot(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	other := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	entry := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	for _, c := range []struct {
		lotID  uint
		amount float64
	}{
		{lot.ID, 300},
		{lot.ID, 700},
		{other.ID, 5000},
	} {
		tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
			ParkingLotID: c.lotID, LicensePlate: "PLATE", EntryTime: null.TimeFrom(entry),
		})
		assert.NoError(t, err)
		_, err = svc.Complete(context.Background(), tx.ID, entry.Add(time.Hour), c.amount)
		assert.NoError(t, err)
	}

	revenue, err := svc.RevenueByParkingLot(context.Background(), lot.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, revenue)
}

func TestEndToEndOpenCompleteScenario(t *testing.T) {
	stores := setupTestStores(t)
	lot := seedLot(t, stores)
	svc := services.NewTransactionService(stores.Transactions, stores.ParkingLots)

	t0 := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	tx, err := svc.Open(context.Background(), services.OpenTransactionInput{
		ParkingLotID:  lot.ID,
		LicensePlate:  "ABC-123",
		EntryTime:     null.TimeFrom(t0),
		PaymentMethod: models.PaymentCreditCard,
	})
	assert.NoError(t, err)

	got, err := svc.Complete(context.Background(), tx.ID, t0.Add(2*time.Hour), 1000)
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, got.Status)
	assert.Equal(t, 2.0, got.DurationHours.Float64)
	assert.Equal(t, 1000.0, got.Amount.Float64)

	// And it reads back the same from the store.
	reread, err := svc.GetByID(context.Background(), tx.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, reread.Status)
	assert.Equal(t, 2.0, reread.DurationHours.Float64)
}
