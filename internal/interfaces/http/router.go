package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetcare-cu/veterinaria-api/internal/application/auth"
	"github.com/vetcare-cu/veterinaria-api/internal/application/consulta"
	"github.com/vetcare-cu/veterinaria-api/internal/application/usecase"
	"github.com/vetcare-cu/veterinaria-api/internal/application/venta"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ComerciableUC *usecase.ComerciableUseCase
	PacienteUC    *usecase.PacienteUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	ConsultaUC    *consulta.UseCase
	ReciboUC      *consulta.ReciboPDFUseCase
	VentaUC       *venta.UseCase
	Log           *logger.Logger
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de comerciables (protegido; altas y bajas solo admin)
	comerciables := protected.Group("/comerciables")
	comerciableHandler := NewComerciableHandler(deps.ComerciableUC)
	comerciables.Get("/search", comerciableHandler.Search)
	comerciables.Get("/", comerciableHandler.List)
	comerciables.Get("/:id", comerciableHandler.GetByID)
	comerciables.Post("/", RequireRole(entity.RolAdmin), comerciableHandler.Create)
	comerciables.Put("/:id", RequireRole(entity.RolAdmin), comerciableHandler.Update)
	comerciables.Delete("/:id", RequireRole(entity.RolAdmin), comerciableHandler.Delete)

	// Pacientes (protegido)
	pacientes := protected.Group("/pacientes")
	pacienteHandler := NewPacienteHandler(deps.PacienteUC)
	pacientes.Post("/", pacienteHandler.Create)
	pacientes.Get("/", pacienteHandler.List)
	pacientes.Get("/:id", pacienteHandler.GetByID)
	pacientes.Put("/:id", pacienteHandler.Update)
	pacientes.Delete("/:id", RequireRole(entity.RolAdmin), pacienteHandler.Delete)

	// Consultas (protegido)
	consultas := protected.Group("/consultas")
	consultaHandler := NewConsultaHandler(deps.ConsultaUC, deps.ReciboUC, deps.Log)
	consultas.Post("/", consultaHandler.Create)
	consultas.Get("/:id", consultaHandler.GetByID)
	consultas.Put("/:id", consultaHandler.Update)
	consultas.Get("/:id/recibo", consultaHandler.DownloadRecibo)
	pacientes.Get("/:paciente_id/consultas", consultaHandler.ListByPaciente)

	// Ventas individuales (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)

	// Usuarios asignables (protegido)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
}
