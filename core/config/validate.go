package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/resolver"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("resolver_url", validateResolverURL); err != nil {
		panic(err)
	}

	// Report fields by their configuration key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateResolverURL(fl validator.FieldLevel) bool {
	return resolver.ValidateURL(fl.Field().String()) == nil
}

// Validate checks every section and returns a *errors.ConfigError describing
// the first invalid field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return wrapConfigError("", err)
	}

	first := validationErrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Config.")
	return &apperrors.ConfigError{
		Field:   field,
		Message: validationMessage(first),
		Err:     err,
	}
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "startswith":
		return fmt.Sprintf("must start with %q", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "url":
		return "must be a valid URL"
	case "numeric":
		return "must be numeric"
	case "resolver_url":
		return "must be an http(s):// URL or dns://server/name"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}

func wrapConfigError(field string, err error) error {
	return &apperrors.ConfigError{Field: field, Message: err.Error(), Err: err}
}
