package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/residencia-inventario/internal/application/alerts"
	"github.com/jhoicas/residencia-inventario/internal/application/reporting"
)

// AlertsHandler feed unificado de alertas y reportes de solo lectura.
type AlertsHandler struct {
	alerts  *alerts.AlertsUseCase
	reports *reporting.StockReportUseCase
	clock   Clock
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(a *alerts.AlertsUseCase, r *reporting.StockReportUseCase, clock Clock) *AlertsHandler {
	return &AlertsHandler{alerts: a, reports: r, clock: clock}
}

// Alerts godoc
// @Summary      Feed de alertas del día
// @Description  Vencimientos, stock, recordatorios anuales y agenda del día en ese orden.
// @Description  Una fuente que falla se omite y aparece en skipped_sources.
// @Tags         alerts
// @Produce      json
// @Param        as_of  query  string  false  "Fecha de referencia YYYY-MM-DD (hoy)"
// @Success      200  {object}  dto.AlertFeedDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertsHandler) Alerts(c *fiber.Ctx) error {
	day, err := asOf(c, h.clock)
	if err != nil {
		return writeError(c, err)
	}
	feed, err := h.alerts.CollectAlertsDTO(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(feed)
}

// StockReport godoc
// @Summary      Reporte de stock por artículo
// @Description  Saldo general, asignado, nivel, días restantes y ranking de consumo.
// @Tags         reports
// @Produce      json
// @Param        as_of  query  string  false  "Fecha de referencia YYYY-MM-DD (hoy)"
// @Success      200  {object}  dto.StockReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *AlertsHandler) StockReport(c *fiber.Ctx) error {
	day, err := asOf(c, h.clock)
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.reports.StockReport(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}
