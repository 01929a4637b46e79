package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrSupplierRequired  = errors.New("el nombre del proveedor es obligatorio")
	ErrInvalidStatus     = errors.New("estado de reparación inválido")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrNothingToExport   = errors.New("no hay datos para exportar en este período")
	ErrCartBusy          = errors.New("el carrito se está confirmando en otra sesión")
	ErrUnavailable       = errors.New("función no habilitada en este despliegue")
)

// ValidationError rechazo de validación con mensaje específico para el usuario.
// El estado (carrito, ticket) queda sin cambios cuando se devuelve.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError construye un rechazo con mensaje formateado.
func NewValidationError(err error, format string, args ...any) *ValidationError {
	return &ValidationError{Err: err, Message: fmt.Sprintf(format, args...)}
}

// InsufficientStock rechazo estándar cuando la cantidad pedida supera el stock disponible.
func InsufficientStock(available, requested int) *ValidationError {
	return NewValidationError(ErrInsufficientStock,
		"la cantidad solicitada supera el stock disponible: disponible %d, solicitado %d", available, requested)
}
