package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// Clock fecha actual; se inyecta para que los tests fijen el día.
type Clock func() time.Time

// asOf lee ?as_of=YYYY-MM-DD o usa el reloj inyectado.
func asOf(c *fiber.Ctx, clock Clock) (time.Time, error) {
	return dateQuery(c, "as_of", clock)
}

func dateQuery(c *fiber.Ctx, key string, fallback Clock) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		if fallback == nil {
			return time.Time{}, nil
		}
		return entity.DateOf(fallback()), nil
	}
	d, err := entity.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %s: %w", key, err.Error(), domain.ErrInvalidInput)
	}
	return d, nil
}

// optionalDate ?key=YYYY-MM-DD o nil si no viene.
func optionalDate(c *fiber.Ctx, key string) (*time.Time, error) {
	d, err := dateQuery(c, key, nil)
	if err != nil || d.IsZero() {
		return nil, err
	}
	return &d, nil
}

// intQuery entero opcional; def si no viene.
func intQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q no es un entero: %w", key, raw, domain.ErrInvalidInput)
	}
	return n, nil
}

func systemClock() time.Time { return time.Now() }
