package handlers

import (
	"opsintel/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewValidator returns the echo validator carrying the engine_mode, iso_date and
// non_negative_decimal rules
func NewValidator() echo.Validator {
	return &requestValidator{validate: validation.GetValidator().GetValidate()}
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
