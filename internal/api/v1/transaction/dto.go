package transaction

import (
	"time"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"gopkg.in/guregu/null.v4"
)

type CreateTransactionRequest struct {
	ParkingLotID  uint       `json:"parking_lot_id" binding:"required"`
	UserID        *int64     `json:"user_id"`
	LicensePlate  string     `json:"license_plate"`
	EntryTime     *time.Time `json:"entry_time"`
	Status        string     `json:"status" binding:"omitempty,txstatus"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,paymethod"`
}

func (r CreateTransactionRequest) toInput() services.OpenTransactionInput {
	return services.OpenTransactionInput{
		ParkingLotID:  r.ParkingLotID,
		UserID:        null.IntFromPtr(r.UserID),
		LicensePlate:  r.LicensePlate,
		EntryTime:     null.TimeFromPtr(r.EntryTime),
		Status:        models.TransactionStatus(r.Status),
		PaymentMethod: models.PaymentMethod(r.PaymentMethod),
	}
}

type CompleteTransactionRequest struct {
	ExitTime time.Time `json:"exit_time" binding:"required"`
	Amount   float64   `json:"amount"`
}

// UpdateTransactionRequest overwrites every mutable field of the
// record, validation-free by design except for enum spelling.
type UpdateTransactionRequest struct {
	ParkingLotID  uint       `json:"parking_lot_id" binding:"required"`
	UserID        *int64     `json:"user_id"`
	LicensePlate  string     `json:"license_plate"`
	EntryTime     *time.Time `json:"entry_time"`
	ExitTime      *time.Time `json:"exit_time"`
	DurationHours *float64   `json:"duration_hours"`
	Amount        *float64   `json:"amount"`
	Status        string     `json:"status" binding:"required,txstatus"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,paymethod"`
}

func (r UpdateTransactionRequest) toInput() services.UpdateTransactionInput {
	return services.UpdateTransactionInput{
		ParkingLotID:  r.ParkingLotID,
		UserID:        null.IntFromPtr(r.UserID),
		LicensePlate:  r.LicensePlate,
		EntryTime:     null.TimeFromPtr(r.EntryTime),
		ExitTime:      null.TimeFromPtr(r.ExitTime),
		DurationHours: null.FloatFromPtr(r.DurationHours),
		Amount:        null.FloatFromPtr(r.Amount),
		Status:        models.TransactionStatus(r.Status),
		PaymentMethod: models.PaymentMethod(r.PaymentMethod),
	}
}

type ListTransactionsQuery struct {
	Status        string     `form:"status" binding:"omitempty,txstatus"`
	PaymentMethod string     `form:"payment_method" binding:"omitempty,paymethod"`
	ParkingLotID  *uint      `form:"parking_lot_id"`
	UserID        *int64     `form:"user_id"`
	LicensePlate  string     `form:"license_plate"`
	EntryFrom     *time.Time `form:"entry_from" time_format:"2006-01-02T15:04:05Z07:00"`
	EntryBefore   *time.Time `form:"entry_before" time_format:"2006-01-02T15:04:05Z07:00"`
	ExitFrom      *time.Time `form:"exit_from" time_format:"2006-01-02T15:04:05Z07:00"`
	ExitBefore    *time.Time `form:"exit_before" time_format:"2006-01-02T15:04:05Z07:00"`
	MinAmount     *float64   `form:"min_amount"`
	MaxAmount     *float64   `form:"max_amount"`
	Ongoing       bool       `form:"ongoing"`
}

func (q ListTransactionsQuery) toFilter() store.TransactionFilter {
	filter := store.TransactionFilter{
		ParkingLotID: q.ParkingLotID,
		UserID:       q.UserID,
		LicensePlate: q.LicensePlate,
		EntryFrom:    q.EntryFrom,
		EntryBefore:  q.EntryBefore,
		ExitFrom:     q.ExitFrom,
		ExitBefore:   q.ExitBefore,
		MinAmount:    q.MinAmount,
		MaxAmount:    q.MaxAmount,
		OngoingOnly:  q.Ongoing,
	}
	if q.Status != "" {
		status := models.TransactionStatus(q.Status)
		filter.Status = &status
	}
	if q.PaymentMethod != "" {
		method := models.PaymentMethod(q.PaymentMethod)
		filter.PaymentMethod = &method
	}
	return filter
}

type RevenueQuery struct {
	ParkingLotID *uint      `form:"parking_lot_id"`
	From         *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To           *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Period       string     `form:"period" binding:"omitempty,oneof=today month"`
}

type RevenueResponse struct {
	Revenue float64 `json:"revenue"`
}
