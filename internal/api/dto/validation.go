package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	equityMin = decimal.Zero
	equityMax = decimal.NewFromInt(1)
)

// ValidEquity reports whether s is a decimal number in [0, 1]
func ValidEquity(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(equityMin) && d.LessThanOrEqual(equityMax)
}

// ConfigureBinding sets up gin's process-wide request binding: unknown JSON
// fields are rejected and the custom validation tags are registered. Call it
// once before serving requests.
func ConfigureBinding() error {
	binding.EnableDecoderDisallowUnknownFields = true
	return registerValidations()
}

func registerValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("equity", func(fl validator.FieldLevel) bool {
		return ValidEquity(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register equity validation: %w", err)
	}
	return nil
}
