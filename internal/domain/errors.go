package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// ValidationError agrupa los mensajes por campo de una violación de
// constraints en la capa de persistencia (campos requeridos, unicidad).
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Fields, "; ")
}

// NewValidationError construye el error con los mensajes por campo.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidation extrae un *ValidationError de la cadena de errores, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
