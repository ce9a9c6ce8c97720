package services

import (
	"errors"
	"fmt"
)

// ErrValidation marca errores de validación (campos requeridos vacíos).
// Son visibles para el llamador pero nunca fatales: la operación aborta
// sin cambiar estado.
var ErrValidation = errors.New("validación")

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
