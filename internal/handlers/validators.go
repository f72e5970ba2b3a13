package handlers

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("currency", validateCurrencyCode)
}

// validateCurrencyCode accepts anything ParseCurrencyCode can normalize.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrencyCode(fl.Field().String())
	return err == nil
}
