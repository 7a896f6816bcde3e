package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestCreateParkingLotDefaults(t *testing.T) {
	stores := setupTestStores(t)
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := services.NewParkingLotService(stores.ParkingLots).WithClock(fixedClock(now))

	lot, err := svc.Create(context.Background(), services.CreateParkingLotInput{
		Name:        "West Lot",
		Address:     "4-5-6 Shibuya",
		TotalSpaces: 80,
		HourlyRate:  250,
		DailyRate:   1800,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ParkingLotActive, lot.Status)
	assert.Equal(t, 80, lot.AvailableSpaces)
	assert.Equal(t, now, lot.CreatedAt)
}

func TestCreateParkingLotExplicitValues(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewParkingLotService(stores.ParkingLots)

	available := 10
	lot, err := svc.Create(context.Background(), services.CreateParkingLotInput{
		Name:            "East Lot",
		Address:         "7-8-9 Shinjuku",
		TotalSpaces:     50,
		AvailableSpaces: &available,
		Status:          models.ParkingLotMaintenance,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ParkingLotMaintenance, lot.Status)
	assert.Equal(t, 10, lot.AvailableSpaces)
}

func TestUpdateAvailableSpaces(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewParkingLotService(stores.ParkingLots)

	lot, err := svc.Create(context.Background(), services.CreateParkingLotInput{
		Name: "Lot", Address: "Addr", TotalSpaces: 20,
	})
	assert.NoError(t, err)

	tests := []struct {
		name      string
		available int
		wantErr   error
	}{
		{"within total", 5, nil},
		{"equal to total", 20, nil},
		{"exceeds total", 21, services.ErrSpacesExceedTotal},
		{"negative accepted", -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := svc.UpdateAvailableSpaces(context.Background(), lot.ID, tt.available)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.available, updated.AvailableSpaces)
		})
	}
}

func TestGenericUpdateSkipsSpacesCheck(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewParkingLotService(stores.ParkingLots)

	lot, err := svc.Create(context.Background(), services.CreateParkingLotInput{
		Name: "Lot", Address: "Addr", TotalSpaces: 20,
	})
	assert.NoError(t, err)

	// The wholesale update path accepts available > total.
	updated, err := svc.Update(context.Background(), lot.ID, services.UpdateParkingLotInput{
		Name:            "Lot",
		Address:         "Addr",
		TotalSpaces:     20,
		AvailableSpaces: 200,
		Status:          models.ParkingLotActive,
	})
	assert.NoError(t, err)
	assert.Equal(t, 200, updated.AvailableSpaces)
}

func TestUpdateParkingLotStatus(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewParkingLotService(stores.ParkingLots)

	lot, err := svc.Create(context.Background(), services.CreateParkingLotInput{
		Name: "Lot", Address: "Addr", TotalSpaces: 20,
	})
	assert.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), lot.ID, models.ParkingLotInactive)
	assert.NoError(t, err)
	assert.Equal(t, models.ParkingLotInactive, updated.Status)
}

func TestParkingLotNotFound(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewParkingLotService(stores.ParkingLots)

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, services.ErrParkingLotNotFound)

	_, err = svc.UpdateStatus(context.Background(), 404, models.ParkingLotActive)
	assert.ErrorIs(t, err, services.ErrParkingLotNotFound)
}

func TestListParkingLotsByStatus(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewParkingLotService(stores.ParkingLots)

	for _, status := range []models.ParkingLotStatus{
		models.ParkingLotActive, models.ParkingLotInactive, models.ParkingLotActive,
	} {
		_, err := svc.Create(context.Background(), services.CreateParkingLotInput{
			Name: "Lot", Address: "Addr", TotalSpaces: 10, Status: status,
		})
		assert.NoError(t, err)
	}

	activeStatus := models.ParkingLotActive
	active, err := svc.List(context.Background(), store.ParkingLotFilter{Status: &activeStatus})
	assert.NoError(t, err)
	assert.Len(t, active, 2)
}
