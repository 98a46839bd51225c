package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates incoming request structures against the
// `validate` struct tags declared in the models package.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report violations by the JSON field name clients actually sent
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalidErr.Type)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %s", ErrValidation, describeFieldErrors(fieldErrors))
	}

	return err
}

func describeFieldErrors(fieldErrors validator.ValidationErrors) string {
	descriptions := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		description := fmt.Sprintf("field '%s' failed on the '%s' rule", fieldError.Field(), fieldError.Tag())
		if param := fieldError.Param(); param != "" {
			description = fmt.Sprintf("%s (%s)", description, param)
		}
		descriptions = append(descriptions, description)
	}

	return strings.Join(descriptions, "; ")
}
