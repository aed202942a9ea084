package inventory

import (
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ConsumptionSample salidas de una clave en la ventana [asOf − windowDays, asOf].
type ConsumptionSample struct {
	TotalOut   int64
	WindowDays int
	DailyRate  decimal.Decimal
}

// WindowStart primer día (inclusive) de la ventana de consumo.
func WindowStart(asOf time.Time, windowDays int) time.Time {
	return entity.AddDays(asOf, -windowDays)
}

// Consumption suma las salidas de la ventana y divide por windowDays, no por los días con actividad:
// los días sin consumo cuentan en el denominador. windowDays debe ser > 0.
func Consumption(events []entity.MovementEvent, itemID, subjectID string, asOf time.Time, windowDays int) ConsumptionSample {
	sample := ConsumptionSample{WindowDays: windowDays, DailyRate: decimal.Zero}
	if windowDays <= 0 {
		return sample
	}
	scope := entity.ScopeFor(subjectID)
	from := WindowStart(asOf, windowDays)
	to := entity.DateOf(asOf)
	for _, e := range events {
		if e.ItemID != itemID || !scope.Matches(e.SubjectID) || e.Direction != entity.DirectionOUT {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		sample.TotalOut += e.Quantity
	}
	sample.DailyRate = decimal.NewFromInt(sample.TotalOut).Div(decimal.NewFromInt(int64(windowDays)))
	return sample
}

// CoveredDays días completos que cubren qty unidades al ritmo de la muestra:
// floor(qty × windowDays / totalOut) en enteros, sin pasar por la tasa redondeada.
// Sin consumo devuelve 0.
func (s ConsumptionSample) CoveredDays(qty int64) int {
	if s.TotalOut <= 0 || s.WindowDays <= 0 || qty <= 0 {
		return 0
	}
	return int(qty * int64(s.WindowDays) / s.TotalOut)
}
