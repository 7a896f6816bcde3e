package models

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCancelled TransactionStatus = "CANCELLED"
	TransactionRefunded  TransactionStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentMobilePayment PaymentMethod = "MOBILE_PAYMENT"
	PaymentSubscription  PaymentMethod = "SUBSCRIPTION"
)

// Transaction records one parking visit: entry, optional exit and the
// settled amount. A null ExitTime means the vehicle is still parked.
type Transaction struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ParkingLotID uint      `gorm:"index;not null" json:"parking_lot_id"`
	UserID       null.Int  `gorm:"index" json:"user_id"`
	LicensePlate string    `gorm:"type:varchar(20);index" json:"license_plate"`
	EntryTime    null.Time `json:"entry_time"`
	ExitTime     null.Time `json:"exit_time"`
	// DurationHours is derived on completion: whole minutes between entry
	// and exit divided by 60.
	DurationHours null.Float        `json:"duration_hours"`
	Amount        null.Float        `gorm:"type:decimal(10,2)" json:"amount"`
	Status        TransactionStatus `gorm:"type:varchar(20);index" json:"status"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(20)" json:"payment_method"`
	CreatedAt     time.Time         `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// Ongoing reports whether the vehicle has not exited yet.
func (t *Transaction) Ongoing() bool {
	return !t.ExitTime.Valid
}
