package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/residencia-inventario/internal/application/alerts"
	"github.com/jhoicas/residencia-inventario/internal/application/inventory"
	"github.com/jhoicas/residencia-inventario/internal/application/reporting"
	"github.com/jhoicas/residencia-inventario/pkg/logger"
	"github.com/jhoicas/residencia-inventario/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Register      *inventory.RegisterMovementUseCase
	Stock         *inventory.StockUseCase
	Forecast      *inventory.ForecastUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Alerts        *alerts.AlertsUseCase
	Reports       *reporting.StockReportUseCase
	Metrics       *metrics.Metrics
	Clock         Clock // nil = reloj del sistema
	Log           *logger.Logger
	ServiceName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	clock := deps.Clock
	if clock == nil {
		clock = systemClock
	}

	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	api := app.Group("/api")

	// Libro de movimientos (solo anexar)
	ledgerHandler := NewLedgerHandler(deps.Register, deps.Stock)
	ledger := api.Group("/ledger")
	ledger.Post("/movements", ledgerHandler.RegisterMovement)
	ledger.Post("/movements/batch", ledgerHandler.RegisterBatch)
	ledger.Get("/movements", ledgerHandler.ListMovements)

	// Saldos, pronósticos y reposición
	invHandler := NewInventoryHandler(deps.Register, deps.Stock, deps.Forecast, deps.Replenishment, clock)
	invGroup := api.Group("/inventory")
	invGroup.Post("/corrections", invHandler.ZeroBalance)
	invGroup.Get("/replenishment", invHandler.GetReplenishmentList)
	invGroup.Get("/items/:itemId/balance", invHandler.Balance)
	invGroup.Get("/items/:itemId/allocations", invHandler.Allocations)
	invGroup.Get("/items/:itemId/forecast", invHandler.Forecast)
	invGroup.Get("/items/:itemId/consumption", invHandler.Consumption)
	invGroup.Get("/items/:itemId/history", invHandler.History)
	invGroup.Get("/subjects/:subjectId/stock", invHandler.SubjectStock)

	// Alertas y reportes
	alertsHandler := NewAlertsHandler(deps.Alerts, deps.Reports, clock)
	api.Get("/alerts", alertsHandler.Alerts)
	api.Get("/reports/stock", alertsHandler.StockReport)
}
