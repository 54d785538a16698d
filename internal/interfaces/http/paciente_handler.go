package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/application/usecase"
)

// PacienteHandler maneja las peticiones HTTP para pacientes (protegido).
type PacienteHandler struct {
	uc *usecase.PacienteUseCase
}

// NewPacienteHandler construye el handler.
func NewPacienteHandler(uc *usecase.PacienteUseCase) *PacienteHandler {
	return &PacienteHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar paciente
// @Tags         pacientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePacienteRequest  true  "Datos del paciente"
// @Success      201   {object}  dto.PacienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pacientes [post]
func (h *PacienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePacienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetClinicaID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pacientes
// @Tags         pacientes
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "paginación"
// @Param        offset query  int  false  "paginación"
// @Success      200    {array}  dto.PacienteResponse
// @Router       /api/pacientes [get]
func (h *PacienteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetClinicaID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener paciente por ID
// @Tags         pacientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paciente"
// @Success      200  {object}  dto.PacienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pacientes/{id} [get]
func (h *PacienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetClinicaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paciente
// @Tags         pacientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del paciente"
// @Param        body  body  dto.CreatePacienteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PacienteResponse
// @Router       /api/pacientes/{id} [put]
func (h *PacienteHandler) Update(c *fiber.Ctx) error {
	var in dto.CreatePacienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetClinicaID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar paciente
// @Tags         pacientes
// @Security     Bearer
// @Param        id  path  string  true  "ID del paciente"
// @Success      204
// @Router       /api/pacientes/{id} [delete]
func (h *PacienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetClinicaID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
