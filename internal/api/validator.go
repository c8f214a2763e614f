package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	return nil
}
