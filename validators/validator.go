// Package validators adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate directly.
package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a new echo-compatible request validator
func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
