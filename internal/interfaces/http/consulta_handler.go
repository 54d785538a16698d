package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetcare-cu/veterinaria-api/internal/application/consulta"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/pkg/logger"
)

// ConsultaHandler maneja las peticiones HTTP para consultas (protegido).
type ConsultaHandler struct {
	uc     *consulta.UseCase
	recibo *consulta.ReciboPDFUseCase
	log    *logger.Logger
}

// NewConsultaHandler construye el handler.
func NewConsultaHandler(uc *consulta.UseCase, recibo *consulta.ReciboPDFUseCase, log *logger.Logger) *ConsultaHandler {
	return &ConsultaHandler{uc: uc, recibo: recibo, log: log}
}

// Create godoc
// @Summary      Crear consulta con su pipeline de ventas
// @Description  Valida y crea los renglones categoría por categoría en orden
// @Description  fijo. Un fallo de validación aborta todo; un fallo de creación
// @Description  deja lo ya creado y responde 207.
// @Tags         consultas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsultaRequest  true  "Consulta con renglones por categoría"
// @Success      201   {object}  dto.ConsultaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      207   {object}  dto.ErrorResponse
// @Router       /api/consultas [post]
func (h *ConsultaHandler) Create(c *fiber.Ctx) error {
	clinicaID := GetClinicaID(c)
	var in dto.CreateConsultaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El avance del pipeline se publica como eventos de log estructurado.
	progreso := func(p int) {
		h.log.Debug().
			Str("clinica_id", clinicaID).
			Str("paciente_id", in.PacienteID).
			Int("porciento", p).
			Msg("progreso de envío de consulta")
	}
	out, err := h.uc.Crear(c.UserContext(), clinicaID, in, progreso)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar consulta (reemplazo masivo de ventas)
// @Tags         consultas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la consulta"
// @Param        body  body  dto.UpdateConsultaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ConsultaResponse
// @Router       /api/consultas/{id} [put]
func (h *ConsultaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConsultaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), GetClinicaID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener consulta con totales recalculados
// @Tags         consultas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la consulta"
// @Success      200  {object}  dto.ConsultaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultas/{id} [get]
func (h *ConsultaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetClinicaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPaciente godoc
// @Summary      Historial de consultas de un paciente
// @Tags         consultas
// @Security     Bearer
// @Produce      json
// @Param        paciente_id  path   string  true   "ID del paciente"
// @Param        limit        query  int     false  "paginación"
// @Param        offset       query  int     false  "paginación"
// @Success      200  {array}  dto.ConsultaResponse
// @Router       /api/pacientes/{paciente_id}/consultas [get]
func (h *ConsultaHandler) ListByPaciente(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListByPaciente(c.UserContext(), GetClinicaID(c), c.Params("paciente_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadRecibo godoc
// @Summary      Descargar recibo PDF de una consulta
// @Tags         consultas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la consulta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultas/{id}/recibo [get]
func (h *ConsultaHandler) DownloadRecibo(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.recibo.DownloadReciboPDF(c.UserContext(), GetClinicaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
