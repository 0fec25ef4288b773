package mediaapi

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError describes a single field that failed validation
type ValidationError struct {
	Struct   string
	Field    string
	Tag      string
	Value    any
	Expected string
}

func (e *ValidationError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf(`invalid %s.%s: failed "%s" check, provided value %v`, e.Struct, e.Field, e.Tag, e.Value)
	}
	return fmt.Sprintf(`invalid %s.%s: failed "%s=%s" check, provided value %v`, e.Struct, e.Field, e.Tag, e.Expected, e.Value)
}

// Validate checks a Media against the backend's rules
func (m *Media) Validate() error {
	return validateStruct("Media", m)
}

// Validate checks a MediaUpdate against the backend's rules
func (u *MediaUpdate) Validate() error {
	return validateStruct("MediaUpdate", u)
}

func validateStruct(name string, value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	errs := make([]error, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		errs = append(errs, &ValidationError{
			Struct:   name,
			Field:    fe.Field(),
			Tag:      fe.ActualTag(),
			Value:    fe.Value(),
			Expected: fe.Param(),
		})
	}
	return errors.Join(errs...)
}
