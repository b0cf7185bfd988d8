// Package validator plugs go-playground/validator into echo form binding.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New reports field errors under their form names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, fe.Field()+":"+fe.Tag())
			}

			return errors.Errorf("invalid fields: %s", strings.Join(fields, ", "))
		}

		return errors.WithStack(err)
	}

	return nil
}
