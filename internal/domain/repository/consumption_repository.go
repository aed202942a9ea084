package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConsumptionTotal salidas acumuladas de un artículo en un período.
type ConsumptionTotal struct {
	ItemID   string
	TotalOut decimal.Decimal
}

// ConsumptionRepository agregados de solo lectura para reportes.
// Solo cuenta el stock general (eventos sin sujeto).
type ConsumptionRepository interface {
	// TopConsumed devuelve los artículos con más salidas en [from, to], de mayor a menor.
	TopConsumed(ctx context.Context, from, to time.Time, limit int) ([]ConsumptionTotal, error)
}
