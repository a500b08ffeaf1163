// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can validate bound request payloads.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request payload validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Handlers turn the returned error
// into a 400 response.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
