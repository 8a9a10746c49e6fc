package utils

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts go-playground/validator to echo's Validator interface.
type EchoValidator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validate: v}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.validate.Struct(i)
}
