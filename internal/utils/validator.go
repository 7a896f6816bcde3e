package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
)

// RegisterCustomValidators wires the enum validations used by the
// request DTOs into gin's binding validator.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("txstatus", func(fl validator.FieldLevel) bool {
		switch models.TransactionStatus(fl.Field().String()) {
		case models.TransactionPending, models.TransactionCompleted,
			models.TransactionCancelled, models.TransactionRefunded:
			return true
		}
		return false
	})

	v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
		switch models.PaymentMethod(fl.Field().String()) {
		case models.PaymentCash, models.PaymentCreditCard,
			models.PaymentMobilePayment, models.PaymentSubscription:
			return true
		}
		return false
	})

	v.RegisterValidation("lotstatus", func(fl validator.FieldLevel) bool {
		switch models.ParkingLotStatus(fl.Field().String()) {
		case models.ParkingLotActive, models.ParkingLotInactive,
			models.ParkingLotMaintenance:
			return true
		}
		return false
	})

	v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.RoleAdmin, models.RoleManager, models.RoleOperator:
			return true
		}
		return false
	})
}
