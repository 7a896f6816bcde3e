package store

import (
	"strings"
	"time"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
)

// TransactionFilter narrows a transaction query. Nil / zero fields are
// ignored. Time ranges are half-open: From is inclusive, Before is
// exclusive.
type TransactionFilter struct {
	Status        *models.TransactionStatus
	PaymentMethod *models.PaymentMethod
	ParkingLotID  *uint
	UserID        *int64
	LicensePlate  string // case-insensitive substring match
	EntryFrom     *time.Time
	EntryBefore   *time.Time
	ExitFrom      *time.Time
	ExitBefore    *time.Time
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	MinAmount     *float64
	MaxAmount     *float64
	OngoingOnly   bool // exit time unset
}

// Matches reports whether tx satisfies the filter. The document adapter
// filters in memory with this; the relational adapter translates the
// same conditions to SQL, and the adapter tests hold them to identical
// results.
func (f TransactionFilter) Matches(tx *models.Transaction) bool {
	if f.Status != nil && tx.Status != *f.Status {
		return false
	}
	if f.PaymentMethod != nil && tx.PaymentMethod != *f.PaymentMethod {
		return false
	}
	if f.ParkingLotID != nil && tx.ParkingLotID != *f.ParkingLotID {
		return false
	}
	if f.UserID != nil && (!tx.UserID.Valid || tx.UserID.Int64 != *f.UserID) {
		return false
	}
	if f.LicensePlate != "" &&
		!strings.Contains(strings.ToLower(tx.LicensePlate), strings.ToLower(f.LicensePlate)) {
		return false
	}
	if !inWindow(tx.EntryTime.Ptr(), f.EntryFrom, f.EntryBefore) {
		return false
	}
	if !inWindow(tx.ExitTime.Ptr(), f.ExitFrom, f.ExitBefore) {
		return false
	}
	created := tx.CreatedAt
	if !inWindow(&created, f.CreatedFrom, f.CreatedBefore) {
		return false
	}
	if f.MinAmount != nil && (!tx.Amount.Valid || tx.Amount.Float64 < *f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && (!tx.Amount.Valid || tx.Amount.Float64 > *f.MaxAmount) {
		return false
	}
	if f.OngoingOnly && tx.ExitTime.Valid {
		return false
	}
	return true
}

func inWindow(t *time.Time, from, before *time.Time) bool {
	if from == nil && before == nil {
		return true
	}
	if t == nil {
		return false
	}
	if from != nil && t.Before(*from) {
		return false
	}
	if before != nil && !t.Before(*before) {
		return false
	}
	return true
}

// ParkingLotFilter narrows a parking lot query.
type ParkingLotFilter struct {
	Status          *models.ParkingLotStatus
	NameContains    string
	AddressContains string
	MinAvailable    *int
	MinTotalSpaces  *int
	MaxHourlyRate   *float64
	MaxDailyRate    *float64
}

func (f ParkingLotFilter) Matches(lot *models.ParkingLot) bool {
	if f.Status != nil && lot.Status != *f.Status {
		return false
	}
	if f.NameContains != "" &&
		!strings.Contains(strings.ToLower(lot.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	if f.AddressContains != "" &&
		!strings.Contains(strings.ToLower(lot.Address), strings.ToLower(f.AddressContains)) {
		return false
	}
	if f.MinAvailable != nil && lot.AvailableSpaces < *f.MinAvailable {
		return false
	}
	if f.MinTotalSpaces != nil && lot.TotalSpaces < *f.MinTotalSpaces {
		return false
	}
	if f.MaxHourlyRate != nil && lot.HourlyRate > *f.MaxHourlyRate {
		return false
	}
	if f.MaxDailyRate != nil && lot.DailyRate > *f.MaxDailyRate {
		return false
	}
	return true
}

// UserFilter narrows a user query.
type UserFilter struct {
	Role             *models.UserRole
	UsernameContains string
	FullNameContains string
	CreatedAfter     *time.Time
}

func (f UserFilter) Matches(user *models.User) bool {
	if f.Role != nil && user.Role != *f.Role {
		return false
	}
	if f.UsernameContains != "" &&
		!strings.Contains(strings.ToLower(user.Username), strings.ToLower(f.UsernameContains)) {
		return false
	}
	if f.FullNameContains != "" &&
		!strings.Contains(strings.ToLower(user.FullName), strings.ToLower(f.FullNameContains)) {
		return false
	}
	if f.CreatedAfter != nil && !user.CreatedAt.After(*f.CreatedAfter) {
		return false
	}
	return true
}
