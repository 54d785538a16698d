package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vetcare-cu/veterinaria-api/internal/application/auth"
	"github.com/vetcare-cu/veterinaria-api/internal/application/consulta"
	"github.com/vetcare-cu/veterinaria-api/internal/application/usecase"
	"github.com/vetcare-cu/veterinaria-api/internal/application/venta"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	infrapdf "github.com/vetcare-cu/veterinaria-api/internal/infrastructure/pdf"
	"github.com/vetcare-cu/veterinaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/vetcare-cu/veterinaria-api/internal/interfaces/http"
	"github.com/vetcare-cu/veterinaria-api/pkg/config"
	"github.com/vetcare-cu/veterinaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	comerciableRepo := postgres.NewComerciableRepository(pool)
	pacienteRepo := postgres.NewPacienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	consultaRepo := postgres.NewConsultaRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// La política de redondeo entra explícita a los casos de uso que calculan
	// totales; nada del cálculo consulta configuración ambiental.
	politica := billing.PoliticaRedondeo{
		Value:                 cfg.Facturacion.PoliticaRedondeo,
		RedondeoDesdeGanancia: cfg.Facturacion.RedondeoDesdeGanancia,
	}

	ventaUC := venta.NewUseCase(comerciableRepo, usuarioRepo, ventaRepo)
	consultaUC := consulta.NewUseCase(
		consultaRepo, pacienteRepo, usuarioRepo, ventaRepo,
		ventaUC, ventaUC, txRunner, politica,
	)

	reciboGenerator := infrapdf.NewMarotoReciboGenerator(cfg.App.Name, cfg.Facturacion.TasaCambio)
	reciboUC := consulta.NewReciboPDFUseCase(
		consultaRepo, pacienteRepo, ventaRepo, comerciableRepo, reciboGenerator, politica,
	)

	comerciableUC := usecase.NewComerciableUseCase(comerciableRepo)
	pacienteUC := usecase.NewPacienteUseCase(pacienteRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Veterinaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ComerciableUC: comerciableUC,
		PacienteUC:    pacienteUC,
		UsuarioUC:     usuarioUC,
		ConsultaUC:    consultaUC,
		ReciboUC:      reciboUC,
		VentaUC:       ventaUC,
		Log:           log,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
