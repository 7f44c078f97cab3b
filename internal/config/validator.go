package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})

	return validateInst
}

// Validate performs schema validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ccaterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ccaterrors.NewValidationError("config", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.ToLower(first.Field())

	var message string
	switch first.Tag() {
	case "required":
		message = "is required"
	case "oneof":
		message = fmt.Sprintf("must be one of [%s]", first.Param())
	default:
		message = fmt.Sprintf("failed %q validation", first.Tag())
	}

	return ccaterrors.NewValidationError(field, message, err)
}
