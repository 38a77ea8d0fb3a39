package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("due_day", validateDueDay)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("notification_type", validateNotificationType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMonth validates a calendar month number (1-12)
func validateMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// validateDueDay validates a recurring payment due day (1-31); clamping to
// shorter months happens at evaluation time, not here
func validateDueDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

// validateTransactionType validates a transaction type value
func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	default:
		return false
	}
}

// validateNotificationType validates a notification type value
func validateNotificationType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "budget_warning", "budget_exceeded", "payment_reminder",
		"insufficient_funds", "report":
		return true
	default:
		return false
	}
}
