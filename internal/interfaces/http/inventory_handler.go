package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/application/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// InventoryHandler saldos, pronósticos, kárdex, correcciones y reposición.
type InventoryHandler struct {
	register      *inventory.RegisterMovementUseCase
	stock         *inventory.StockUseCase
	forecast      *inventory.ForecastUseCase
	replenishment *inventory.ReplenishmentUseCase
	clock         Clock
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterMovementUseCase,
	stock *inventory.StockUseCase,
	forecast *inventory.ForecastUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	clock Clock,
) *InventoryHandler {
	return &InventoryHandler{register: register, stock: stock, forecast: forecast, replenishment: replenishment, clock: clock}
}

// ZeroBalance godoc
// @Summary      Asiento compensatorio: deja el saldo en cero
// @Description  Anexa una salida igual al saldo positivo actual. 409 si el saldo ya es ≤ 0.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ZeroBalanceRequest  true  "item_id, subject_id opcional, date opcional (hoy)"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/corrections [post]
func (h *InventoryHandler) ZeroBalance(c *fiber.Ctx) error {
	var in dto.ZeroBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date := entity.DateOf(h.clock())
	if in.Date != "" {
		d, err := entity.ParseDate(in.Date)
		if err != nil {
			return writeError(c, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput))
		}
		date = d
	}
	id, qty, err := h.register.ZeroBalance(c.UserContext(), in.ItemID, in.SubjectID, date, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "quantity": qty})
}

// Balance godoc
// @Summary      Saldo de un artículo
// @Description  Sin subject_id devuelve el stock general (no la suma de asignaciones personales).
// @Tags         inventory
// @Produce      json
// @Param        itemId      path   string  true   "Artículo"
// @Param        subject_id  query  string  false  "Residente"
// @Success      200  {object}  dto.BalanceDTO
// @Router       /api/inventory/items/{itemId}/balance [get]
func (h *InventoryHandler) Balance(c *fiber.Ctx) error {
	out, err := h.stock.Balance(c.UserContext(), c.Params("itemId"), c.Query("subject_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Allocations godoc
// @Summary      Stock general y asignaciones personales de un artículo
// @Tags         inventory
// @Produce      json
// @Param        itemId  path  string  true  "Artículo"
// @Success      200  {object}  dto.AllocationsDTO
// @Router       /api/inventory/items/{itemId}/allocations [get]
func (h *InventoryHandler) Allocations(c *fiber.Ctx) error {
	out, err := h.stock.Allocations(c.UserContext(), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Forecast godoc
// @Summary      Proyección de agotamiento
// @Tags         inventory
// @Produce      json
// @Param        itemId      path   string  true   "Artículo"
// @Param        subject_id  query  string  false  "Residente"
// @Param        as_of       query  string  false  "Fecha de referencia YYYY-MM-DD (hoy)"
// @Success      200  {object}  dto.ForecastDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{itemId}/forecast [get]
func (h *InventoryHandler) Forecast(c *fiber.Ctx) error {
	day, err := asOf(c, h.clock)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.forecast.ForecastDTO(c.UserContext(), c.Params("itemId"), c.Query("subject_id"), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Consumption godoc
// @Summary      Consumo diario estimado
// @Tags         inventory
// @Produce      json
// @Param        itemId       path   string  true   "Artículo"
// @Param        subject_id   query  string  false  "Residente"
// @Param        as_of        query  string  false  "Fecha de referencia YYYY-MM-DD (hoy)"
// @Param        window_days  query  int     false  "Ventana en días (configuración por defecto)"
// @Success      200  {object}  dto.ConsumptionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{itemId}/consumption [get]
func (h *InventoryHandler) Consumption(c *fiber.Ctx) error {
	day, err := asOf(c, h.clock)
	if err != nil {
		return writeError(c, err)
	}
	window, err := intQuery(c, "window_days", 0)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.forecast.ConsumptionDTO(c.UserContext(), c.Params("itemId"), c.Query("subject_id"), day, window)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Kárdex de un artículo
// @Tags         inventory
// @Produce      json
// @Param        itemId      path   string  true   "Artículo"
// @Param        subject_id  query  string  false  "Residente"
// @Param        from        query  string  false  "Desde YYYY-MM-DD"
// @Param        to          query  string  false  "Hasta YYYY-MM-DD"
// @Success      200  {object}  dto.HistoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{itemId}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	from, err := optionalDate(c, "from")
	if err != nil {
		return writeError(c, err)
	}
	to, err := optionalDate(c, "to")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.History(c.UserContext(), c.Params("itemId"), c.Query("subject_id"), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubjectStock godoc
// @Summary      Stock personal de un residente
// @Tags         inventory
// @Produce      json
// @Param        subjectId  path  string  true  "Residente"
// @Success      200  {object}  dto.SubjectStockDTO
// @Router       /api/inventory/subjects/{subjectId}/stock [get]
func (h *InventoryHandler) SubjectStock(c *fiber.Ctx) error {
	out, err := h.stock.SubjectStock(c.UserContext(), c.Params("subjectId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Artículos del stock general bajo su mínimo con la cantidad sugerida,
//
//	ordenados por urgencia (nivel, días restantes, nombre).
//
// @Tags         inventory
// @Produce      json
// @Param        as_of  query  string  false  "Fecha de referencia YYYY-MM-DD (hoy)"
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	day, err := asOf(c, h.clock)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"as_of":          day.Format(entity.DateLayout),
		"total":          len(list),
		"replenishments": list,
	})
}
