package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidGoal is returned when a goal is not one of the supported goals.
	ErrInvalidGoal = errors.New("invalid goal")

	// ErrInvalidIntensity is returned when a training intensity is not recognized.
	ErrInvalidIntensity = errors.New("invalid training intensity")
)

// validate is shared by every entity; validator caches struct metadata and
// is safe for concurrent use.
var validate = validator.New()

// validateStruct runs tag-based validation and wraps any failure in ErrValidation.
func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
