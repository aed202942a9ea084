package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// Policy umbrales de urgencia (política de producto, configurable).
type Policy struct {
	WindowDays   int
	CriticalDays int
	WarningDays  int
}

// DefaultPolicy ventana de 30 días; CRITICAL ≤ 3 días, WARNING ≤ 7.
func DefaultPolicy() Policy {
	return Policy{WindowDays: 30, CriticalDays: 3, WarningDays: 7}
}

// Validate rechaza ventanas no positivas o umbrales incoherentes.
func (p Policy) Validate() error {
	if p.WindowDays <= 0 {
		return fmt.Errorf("ventana de consumo %d debe ser positiva", p.WindowDays)
	}
	if p.CriticalDays < 0 || p.WarningDays < 0 {
		return fmt.Errorf("umbrales negativos (critical=%d, warning=%d)", p.CriticalDays, p.WarningDays)
	}
	if p.CriticalDays > p.WarningDays {
		return fmt.Errorf("critical (%d) no puede superar warning (%d)", p.CriticalDays, p.WarningDays)
	}
	return nil
}

// TierFor clasifica días restantes numéricos. Monótono: menos días nunca es menos urgente.
func (p Policy) TierFor(daysRemaining int) entity.Tier {
	switch {
	case daysRemaining <= p.CriticalDays:
		return entity.TierCritical
	case daysRemaining <= p.WarningDays:
		return entity.TierWarning
	default:
		return entity.TierSafe
	}
}

// Forecast proyecta el agotamiento de (itemID, subjectID) a partir de una instantánea del libro.
// Nunca falla: claves desconocidas dan saldo 0 y UNKNOWN.
func Forecast(events []entity.MovementEvent, itemID, subjectID string, asOf time.Time, p Policy) entity.ForecastResult {
	asOf = entity.DateOf(asOf)
	scope := entity.ScopeFor(subjectID)
	seen := false
	for _, e := range events {
		if e.ItemID == itemID && scope.Matches(e.SubjectID) {
			seen = true
			break
		}
	}

	sample := Consumption(events, itemID, subjectID, asOf, p.WindowDays)
	res := entity.ForecastResult{
		ItemID:         itemID,
		SubjectID:      subjectID,
		AsOf:           asOf,
		CurrentBalance: Balance(events, itemID, subjectID),
		DailyRate:      sample.DailyRate,
		WindowDays:     p.WindowDays,
	}

	if !seen {
		res.State = entity.DaysNoHistory
		res.Tier = entity.TierUnknown
		return res
	}

	if res.CurrentBalance <= 0 {
		res.Tier = entity.TierDepleted
		lastIn, ok := LastIn(events, itemID, subjectID)
		if !ok {
			res.State = entity.DaysNoHistory
			return res
		}
		res.State = entity.DaysDepleted
		res.DaysWithoutStock = daysWithoutStock(lastIn, sample, asOf)
		return res
	}

	if res.DailyRate.IsZero() {
		res.State = entity.DaysUnbounded
		res.Tier = entity.TierUnknown
		return res
	}

	res.State = entity.DaysNumeric
	res.DaysRemaining = sample.CoveredDays(res.CurrentBalance)
	exhaustion := entity.AddDays(asOf, res.DaysRemaining)
	res.ProjectedExhaustionDate = &exhaustion
	res.Tier = p.TierFor(res.DaysRemaining)
	return res
}

// daysWithoutStock días transcurridos desde la última entrada menos los días que esa entrada
// debió cubrir al ritmo actual; mínimo 0. Sin consumo no hay estimación y se reporta 0.
func daysWithoutStock(lastIn entity.MovementEvent, sample ConsumptionSample, asOf time.Time) int {
	if sample.TotalOut <= 0 {
		return 0
	}
	elapsed := entity.DaysBetween(lastIn.Date, asOf)
	over := elapsed - sample.CoveredDays(lastIn.Quantity)
	if over < 0 {
		return 0
	}
	return over
}
