package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/application/usecase"
)

// ComerciableHandler maneja las peticiones HTTP del catálogo (protegido).
type ComerciableHandler struct {
	uc *usecase.ComerciableUseCase
}

// NewComerciableHandler construye el handler.
func NewComerciableHandler(uc *usecase.ComerciableUseCase) *ComerciableHandler {
	return &ComerciableHandler{uc: uc}
}

// Create godoc
// @Summary      Crear comerciable
// @Tags         comerciables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateComerciableRequest  true  "Datos del comerciable"
// @Success      201   {object}  dto.ComerciableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/comerciables [post]
func (h *ComerciableHandler) Create(c *fiber.Ctx) error {
	clinicaID := GetClinicaID(c)
	var in dto.CreateComerciableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(clinicaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar comerciables por nombre (autocompletado)
// @Tags         comerciables
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  true   "término de búsqueda"
// @Param        tipo  query  string  false  "producto|medicamento|servicio|vacuna|antiparasitario"
// @Param        limit query  int     false  "máximo de resultados"
// @Success      200   {array}  dto.ComerciableResponse
// @Router       /api/comerciables/search [get]
func (h *ComerciableHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchComerciablesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Search(GetClinicaID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo
// @Tags         comerciables
// @Security     Bearer
// @Produce      json
// @Param        tipo   query  string  false  "filtrar por tipo"
// @Param        limit  query  int     false  "paginación"
// @Param        offset query  int     false  "paginación"
// @Success      200    {array}  dto.ComerciableResponse
// @Router       /api/comerciables [get]
func (h *ComerciableHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetClinicaID(c), c.Query("tipo"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comerciable por ID
// @Tags         comerciables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del comerciable"
// @Success      200  {object}  dto.ComerciableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comerciables/{id} [get]
func (h *ComerciableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetClinicaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar comerciable
// @Tags         comerciables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del comerciable"
// @Param        body  body  dto.UpdateComerciableRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ComerciableResponse
// @Router       /api/comerciables/{id} [put]
func (h *ComerciableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateComerciableRequest
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
// @Summary      Eliminar comerciable
// @Tags         comerciables
// @Security     Bearer
// @Param        id  path  string  true  "ID del comerciable"
// @Success      204
// @Router       /api/comerciables/{id} [delete]
func (h *ComerciableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetClinicaID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
