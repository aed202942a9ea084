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

	_ "github.com/jhoicas/residencia-inventario/docs"
	"github.com/jhoicas/residencia-inventario/internal/application/alerts"
	"github.com/jhoicas/residencia-inventario/internal/application/inventory"
	"github.com/jhoicas/residencia-inventario/internal/application/reporting"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	httpRouter "github.com/jhoicas/residencia-inventario/internal/interfaces/http"
	"github.com/jhoicas/residencia-inventario/pkg/config"
	"github.com/jhoicas/residencia-inventario/pkg/logger"
	"github.com/jhoicas/residencia-inventario/pkg/metrics"
)

// @title        Inventario Residencia API
// @version      1.0
// @description  Libro de movimientos, pronóstico de agotamiento y alertas de una residencia.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Ledger.Backend).
		Msg("iniciando aplicación")

	policy := inv.Policy{
		WindowDays:   cfg.Forecast.WindowDays,
		CriticalDays: cfg.Forecast.CriticalDays,
		WarningDays:  cfg.Forecast.WarningDays,
	}
	if err := policy.Validate(); err != nil {
		log.Fatal().Err(err).Msg("política de pronóstico")
	}

	ctx := context.Background()
	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("backend del libro")
	}
	defer be.close()

	m := metrics.New()
	registerUC := inventory.NewRegisterMovementUseCase(be.ledger, be.catalog, log, m)
	stockUC := inventory.NewStockUseCase(be.ledger, be.catalog, be.subjects)
	forecastUC := inventory.NewForecastUseCase(be.ledger, be.catalog, policy, m)
	replenishmentUC := inventory.NewReplenishmentUseCase(be.catalog, forecastUC)
	alertsUC := alerts.NewAlertsUseCase(
		be.catalog, be.subjects, forecastUC, be.sources,
		cfg.Alerts.ExpiryHorizonDays, log, m,
	)
	reportUC := reporting.NewStockReportUseCase(be.ledger, be.catalog, be.consumption, policy)

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
		Title:    "Inventario Residencia API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Register:      registerUC,
		Stock:         stockUC,
		Forecast:      forecastUC,
		Replenishment: replenishmentUC,
		Alerts:        alertsUC,
		Reports:       reportUC,
		Metrics:       m,
		Log:           log,
		ServiceName:   cfg.App.Name,
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
