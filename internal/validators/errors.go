package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrValidation       = errors.New("validation error")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
