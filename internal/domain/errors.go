package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrSesionExpirada     = errors.New("sesión expirada")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ErrorCampo es un error de validación local atado a un campo concreto del
// formulario; la app lo usa para enfocar/desplazar al campo ofensor.
type ErrorCampo struct {
	Campo   string
	Mensaje string
}

func (e *ErrorCampo) Error() string { return e.Campo + ": " + e.Mensaje }

// NuevoErrorCampo construye un error de validación de campo.
func NuevoErrorCampo(campo, mensaje string) *ErrorCampo {
	return &ErrorCampo{Campo: campo, Mensaje: mensaje}
}
