// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hearth/internal/money"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	}
}

// validateMoneyAmount accepts anything that parses as a currency amount once
// formatting characters are stripped ("600", "2,503.50", "$1200").
func validateMoneyAmount(fl validator.FieldLevel) bool {
	return money.IsValidAmount(fl.Field().String())
}
