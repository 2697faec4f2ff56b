package validation

import (
	"reflect"
	"strings"

	"opsintel/internal/models"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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

	_ = v.RegisterValidation("engine_mode", validateEngineMode)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("non_negative_decimal", validateNonNegativeDecimal)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "" {
			tag = fld.Tag.Get("query")
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateEngineMode accepts auto, sql and tabular, case-insensitively
func validateEngineMode(fl validator.FieldLevel) bool {
	mode := models.EngineMode(strings.ToLower(strings.TrimSpace(fl.Field().String())))
	return mode.IsValid()
}

// validateISODate accepts a calendar day in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	_, err := civil.ParseDate(fl.Field().String())
	return err == nil
}

// validateNonNegativeDecimal accepts decimal strings greater than or equal to zero
func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return !value.IsNegative()
}
