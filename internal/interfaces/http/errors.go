package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vetcare-cu/veterinaria-api/internal/application/consulta"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
)

// respondError mapea errores de dominio a HTTP. Los errores de campo llevan
// el nombre del campo ofensor para que la app lo enfoque; un fallo parcial en
// la creación de una consulta responde 207 con el detalle de lo ya creado.
func respondError(c *fiber.Ctx, err error) error {
	var campo *domain.ErrorCampo
	if errors.As(err, &campo) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: campo.Mensaje, Campo: campo.Campo,
		})
	}
	var parcial *consulta.ErrorParcial
	if errors.As(err, &parcial) {
		return c.Status(fiber.StatusMultiStatus).JSON(dto.ErrorResponse{
			Code:    "PARCIAL",
			Message: parcial.Error(),
			Errores: []string{"consulta creada: " + parcial.ConsultaID},
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrSesionExpirada):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SESION_EXPIRADA", Message: "sesión expirada"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
