package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/application/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// LedgerHandler maneja el libro de movimientos: anexar y consultar.
type LedgerHandler struct {
	register *inventory.RegisterMovementUseCase
	stock    *inventory.StockUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(register *inventory.RegisterMovementUseCase, stock *inventory.StockUseCase) *LedgerHandler {
	return &LedgerHandler{register: register, stock: stock}
}

// RegisterMovement godoc
// @Summary      Anexar movimiento al libro
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "date YYYY-MM-DD, direction IN/OUT, item_id, subject_id opcional, quantity > 0"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/movements [post]
func (h *LedgerHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.register.RegisterMovementFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "movimiento registrado"})
}

// RegisterBatch godoc
// @Summary      Anexar lote de movimientos (todo o nada)
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterBatchRequest  true  "movements"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/movements/batch [post]
func (h *LedgerHandler) RegisterBatch(c *fiber.Ctx) error {
	var in dto.RegisterBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ids, err := h.register.RegisterBatchFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ids": ids, "total": len(ids)})
}

// ListMovements godoc
// @Summary      Consultar el libro (más recientes primero)
// @Tags         ledger
// @Produce      json
// @Param        item_id     query  string  false  "Artículo"
// @Param        subject_id  query  string  false  "Residente (solo su asignación personal)"
// @Param        scope       query  string  false  "any | facility (ignorado si viene subject_id)"
// @Param        from        query  string  false  "Desde YYYY-MM-DD (inclusive)"
// @Param        to          query  string  false  "Hasta YYYY-MM-DD (inclusive)"
// @Param        direction   query  string  false  "IN | OUT"
// @Param        limit       query  int     false  "Máximo 500"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	f := entity.MovementFilter{ItemID: c.Query("item_id"), Scope: entity.AnySubject()}
	switch subject, scope := c.Query("subject_id"), strings.ToLower(c.Query("scope")); {
	case subject != "":
		f.Scope = entity.OnlySubject(subject)
	case scope == "facility":
		f.Scope = entity.FacilityOnly()
	case scope != "" && scope != "any":
		return writeError(c, fmt.Errorf("scope %q: %w", scope, domain.ErrInvalidInput))
	}
	var err error
	if f.From, err = optionalDate(c, "from"); err != nil {
		return writeError(c, err)
	}
	if f.To, err = optionalDate(c, "to"); err != nil {
		return writeError(c, err)
	}
	if d := c.Query("direction"); d != "" {
		f.Direction = entity.ParseDirection(d)
	}
	var page dto.PageRequest
	if page.Limit, err = intQuery(c, "limit", 0); err != nil {
		return writeError(c, err)
	}
	if page.Offset, err = intQuery(c, "offset", 0); err != nil {
		return writeError(c, err)
	}

	list, err := h.stock.ListMovements(c.UserContext(), f, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
