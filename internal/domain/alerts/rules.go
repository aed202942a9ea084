// Package alerts define cómo cada fuente se convierte en alertas y el orden fijo
// en que se presentan. Todo es puro: la fecha de referencia llega como parámetro.
package alerts

import (
	"fmt"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// DefaultExpiryHorizonDays días de anticipación para avisar de un vencimiento.
const DefaultExpiryHorizonDays = 30

// Expiry clasifica una entidad con vencimiento. ok=false si aún no entra en el horizonte.
// Error si el registro está mal formado (se omite y se registra, no se propaga).
func Expiry(source string, e entity.ExpiringEntity, subjectName string, asOf time.Time, horizonDays int) (entity.Alert, bool, error) {
	exp, err := e.Expiration()
	if err != nil {
		return entity.Alert{}, false, err
	}
	days := entity.DaysBetween(asOf, exp)
	if days > horizonDays {
		return entity.Alert{}, false, nil
	}
	a := entity.Alert{
		ID:         fmt.Sprintf("expiry:%s:%s", source, e.ID),
		Category:   entity.AlertDocumentExpiry,
		SubjectRef: e.SubjectRef,
		OccursOn:   exp,
		Days:       days,
		Label:      e.Label,
	}
	switch {
	case days < 0:
		a.ExpiryStatus = entity.ExpiryOverdue
		a.Severity = entity.SeverityCritical
		a.Message = fmt.Sprintf("%s de %s venció hace %d días", e.Label, subjectName, -days)
	case days == 0:
		a.ExpiryStatus = entity.ExpiryDueToday
		a.Severity = entity.SeverityHigh
		a.Message = fmt.Sprintf("%s de %s vence hoy", e.Label, subjectName)
	default:
		a.ExpiryStatus = entity.ExpiryUpcoming
		a.Severity = entity.SeverityMedium
		a.Message = fmt.Sprintf("%s de %s vence en %d días", e.Label, subjectName, days)
	}
	return a, true, nil
}

// Recurring alerta de fecha recurrente; solo si el mes-día coincide con asOf.
func Recurring(source string, r entity.Recurrence, subjectName string, asOf time.Time) (entity.Alert, bool, error) {
	hit, err := r.OccursOn(asOf)
	if err != nil || !hit {
		return entity.Alert{}, false, err
	}
	return entity.Alert{
		ID:         fmt.Sprintf("recurring:%s:%s", source, r.ID),
		Category:   entity.AlertRecurringDate,
		Severity:   entity.SeverityInfo,
		SubjectRef: r.SubjectRef,
		OccursOn:   entity.DateOf(asOf),
		Message:    fmt.Sprintf("%s de %s", r.Label, subjectName),
		Label:      r.Label,
	}, true, nil
}

// Scheduled alerta de evento agendado exactamente en asOf.
func Scheduled(source string, s entity.ScheduledEvent, subjectName string, asOf time.Time) (entity.Alert, bool, error) {
	if !entity.DateOf(s.Date).Equal(entity.DateOf(asOf)) {
		return entity.Alert{}, false, nil
	}
	hhmm, err := s.NormalizedTime()
	if err != nil {
		return entity.Alert{}, false, err
	}
	msg := fmt.Sprintf("%s (%s)", s.Label, subjectName)
	if hhmm != "" {
		msg = fmt.Sprintf("%s %s (%s)", hhmm, s.Label, subjectName)
	}
	return entity.Alert{
		ID:         fmt.Sprintf("scheduled:%s:%s", source, s.ID),
		Category:   entity.AlertScheduledEvent,
		Severity:   entity.SeverityInfo,
		SubjectRef: s.SubjectRef,
		OccursOn:   entity.DateOf(asOf),
		Time:       hhmm,
		Message:    msg,
		Label:      s.Label,
	}, true, nil
}

// Stock alerta de stock general para un artículo bajo su punto de reorden.
// CRITICAL/DEPLETED → DEPLETION_FORECAST; cualquier otro nivel → LOW_STOCK.
func Stock(item *entity.Item, f entity.ForecastResult) (entity.Alert, bool) {
	if item == nil || f.CurrentBalance >= item.MinimumThreshold {
		return entity.Alert{}, false
	}
	a := entity.Alert{
		Tier:     f.Tier,
		OccursOn: f.AsOf,
		Label:    item.DisplayName(),
	}
	if f.ProjectedExhaustionDate != nil {
		a.OccursOn = *f.ProjectedExhaustionDate
		days := f.DaysRemaining
		a.DaysRemaining = &days
		a.Days = days
	}
	switch f.Tier {
	case entity.TierDepleted:
		a.ID = "depletion:" + item.ID
		a.Category = entity.AlertDepletionForecast
		a.Severity = entity.SeverityCritical
		if f.State == entity.DaysDepleted && f.DaysWithoutStock > 0 {
			a.Message = fmt.Sprintf("%s agotado (saldo %d %s, ~%d días sin stock)", item.DisplayName(), f.CurrentBalance, item.Unit, f.DaysWithoutStock)
		} else {
			a.Message = fmt.Sprintf("%s agotado (saldo %d %s)", item.DisplayName(), f.CurrentBalance, item.Unit)
		}
	case entity.TierCritical:
		a.ID = "depletion:" + item.ID
		a.Category = entity.AlertDepletionForecast
		a.Severity = entity.SeverityHigh
		a.Message = fmt.Sprintf("%s se agota en %d días (%s)", item.DisplayName(), f.DaysRemaining, f.ExhaustionLabel())
	default:
		a.ID = "low-stock:" + item.ID
		a.Category = entity.AlertLowStock
		a.Severity = entity.SeverityMedium
		a.Message = fmt.Sprintf("%s bajo mínimo: %d de %d %s", item.DisplayName(), f.CurrentBalance, item.MinimumThreshold, item.Unit)
	}
	return a, true
}
