package models

import "time"

type ParkingLotStatus string

const (
	ParkingLotActive      ParkingLotStatus = "ACTIVE"
	ParkingLotInactive    ParkingLotStatus = "INACTIVE"
	ParkingLotMaintenance ParkingLotStatus = "MAINTENANCE"
)

type ParkingLot struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	Name            string           `gorm:"not null" json:"name"`
	Address         string           `gorm:"not null" json:"address"`
	TotalSpaces     int              `gorm:"not null;default:0" json:"total_spaces"`
	AvailableSpaces int              `gorm:"not null;default:0" json:"available_spaces"`
	HourlyRate      float64          `gorm:"type:decimal(10,2);default:0" json:"hourly_rate"`
	DailyRate       float64          `gorm:"type:decimal(10,2);default:0" json:"daily_rate"`
	Status          ParkingLotStatus `gorm:"type:varchar(20);index" json:"status"`
	// Timestamps are written by the service layer through its clock,
	// so GORM's automatic tracking is disabled.
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
