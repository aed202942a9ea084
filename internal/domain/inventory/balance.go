// Package inventory contiene los servicios de dominio puros del libro de movimientos:
// saldo por repetición de eventos, consumo diario y proyección de agotamiento.
// Ninguna función lee el reloj ni guarda estado.
package inventory

import "github.com/jhoicas/residencia-inventario/internal/domain/entity"

// Balance suma con signo los eventos de la clave (itemID, subjectID) exacta.
// subjectID vacío es el stock general: no incluye asignaciones personales.
func Balance(events []entity.MovementEvent, itemID, subjectID string) int64 {
	scope := entity.ScopeFor(subjectID)
	var total int64
	for _, e := range events {
		if e.ItemID != itemID || !scope.Matches(e.SubjectID) {
			continue
		}
		total += e.Signed()
	}
	return total
}

// BalancesBySubject saldos personales de un artículo por sujeto (excluye el stock general).
func BalancesBySubject(events []entity.MovementEvent, itemID string) map[string]int64 {
	out := make(map[string]int64)
	for _, e := range events {
		if e.ItemID != itemID || e.IsFacility() {
			continue
		}
		out[e.SubjectID] += e.Signed()
	}
	return out
}

// BalancesByItem saldos por artículo dentro del alcance indicado.
func BalancesByItem(events []entity.MovementEvent, scope entity.SubjectScope) map[string]int64 {
	out := make(map[string]int64)
	for _, e := range events {
		if !scope.Matches(e.SubjectID) {
			continue
		}
		out[e.ItemID] += e.Signed()
	}
	return out
}

// LastIn última entrada de la clave por fecha; a igual fecha gana la insertada después.
func LastIn(events []entity.MovementEvent, itemID, subjectID string) (entity.MovementEvent, bool) {
	scope := entity.ScopeFor(subjectID)
	var last entity.MovementEvent
	found := false
	for _, e := range events {
		if e.ItemID != itemID || !scope.Matches(e.SubjectID) || e.Direction != entity.DirectionIN {
			continue
		}
		if !found || e.Date.After(last.Date) || (e.Date.Equal(last.Date) && e.Seq >= last.Seq) {
			last = e
			found = true
		}
	}
	return last, found
}
