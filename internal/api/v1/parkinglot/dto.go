package parkinglot

import (
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

type CreateParkingLotRequest struct {
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	TotalSpaces     int     `json:"total_spaces" binding:"min=0"`
	AvailableSpaces *int    `json:"available_spaces"`
	HourlyRate      float64 `json:"hourly_rate" binding:"min=0"`
	DailyRate       float64 `json:"daily_rate" binding:"min=0"`
	Status          string  `json:"status" binding:"omitempty,lotstatus"`
}

func (r CreateParkingLotRequest) toInput() services.CreateParkingLotInput {
	return services.CreateParkingLotInput{
		Name:            r.Name,
		Address:         r.Address,
		TotalSpaces:     r.TotalSpaces,
		AvailableSpaces: r.AvailableSpaces,
		HourlyRate:      r.HourlyRate,
		DailyRate:       r.DailyRate,
		Status:          models.ParkingLotStatus(r.Status),
	}
}

// UpdateParkingLotRequest replaces every field. There is deliberately
// no available<=total check on this path; only the dedicated spaces
// endpoint enforces it.
type UpdateParkingLotRequest struct {
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	TotalSpaces     int     `json:"total_spaces"`
	AvailableSpaces int     `json:"available_spaces"`
	HourlyRate      float64 `json:"hourly_rate"`
	DailyRate       float64 `json:"daily_rate"`
	Status          string  `json:"status" binding:"required,lotstatus"`
}

func (r UpdateParkingLotRequest) toInput() services.UpdateParkingLotInput {
	return services.UpdateParkingLotInput{
		Name:            r.Name,
		Address:         r.Address,
		TotalSpaces:     r.TotalSpaces,
		AvailableSpaces: r.AvailableSpaces,
		HourlyRate:      r.HourlyRate,
		DailyRate:       r.DailyRate,
		Status:          models.ParkingLotStatus(r.Status),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,lotstatus"`
}

type UpdateSpacesRequest struct {
	AvailableSpaces int `json:"available_spaces" binding:"min=0"`
}

type ListParkingLotsQuery struct {
	Status         string   `form:"status" binding:"omitempty,lotstatus"`
	Name           string   `form:"name"`
	Address        string   `form:"address"`
	MinAvailable   *int     `form:"min_available"`
	MinTotalSpaces *int     `form:"min_total_spaces"`
	MaxHourlyRate  *float64 `form:"max_hourly_rate"`
	MaxDailyRate   *float64 `form:"max_daily_rate"`
}

func (q ListParkingLotsQuery) toFilter() store.ParkingLotFilter {
	filter := store.ParkingLotFilter{
		NameContains:    q.Name,
		AddressContains: q.Address,
		MinAvailable:    q.MinAvailable,
		MinTotalSpaces:  q.MinTotalSpaces,
		MaxHourlyRate:   q.MaxHourlyRate,
		MaxDailyRate:    q.MaxDailyRate,
	}
	if q.Status != "" {
		status := models.ParkingLotStatus(q.Status)
		filter.Status = &status
	}
	return filter
}
