package alerts

import (
	"sort"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// Bucket clase de prioridad. El orden entre clases es fijo (no es un puntaje):
// vencimientos > stock > fechas recurrentes > eventos agendados.
type Bucket int

// Clases en orden de presentación.
const (
	BucketExpiry Bucket = iota
	BucketStock
	BucketRecurring
	BucketScheduled
	bucketCount
)

// BucketOf clase de una alerta según su categoría.
func BucketOf(a entity.Alert) Bucket {
	switch a.Category {
	case entity.AlertDocumentExpiry:
		return BucketExpiry
	case entity.AlertDepletionForecast, entity.AlertLowStock:
		return BucketStock
	case entity.AlertRecurringDate:
		return BucketRecurring
	default:
		return BucketScheduled
	}
}

// Order clasifica cada alerta en su clase, ordena dentro de cada clase y concatena
// las clases en el orden declarado. La entrada no se modifica.
func Order(in []entity.Alert) []entity.Alert {
	var buckets [bucketCount][]entity.Alert
	for _, a := range in {
		b := BucketOf(a)
		buckets[b] = append(buckets[b], a)
	}
	out := make([]entity.Alert, 0, len(in))
	for b := Bucket(0); b < bucketCount; b++ {
		list := buckets[b]
		sort.SliceStable(list, lessFor(b, list))
		out = append(out, list...)
	}
	return out
}

func lessFor(b Bucket, list []entity.Alert) func(i, j int) bool {
	return func(i, j int) bool {
		x, y := list[i], list[j]
		switch b {
		case BucketExpiry:
			// Vencido > vence hoy > próximo; luego la fecha más antigua primero.
			if x.Severity != y.Severity {
				return x.Severity > y.Severity
			}
			if !x.OccursOn.Equal(y.OccursOn) {
				return x.OccursOn.Before(y.OccursOn)
			}
		case BucketStock:
			// DEPLETION_FORECAST antes que LOW_STOCK; agotado antes que crítico.
			if x.Severity != y.Severity {
				return x.Severity > y.Severity
			}
			if dx, dy := daysKey(x), daysKey(y); dx != dy {
				return dx < dy
			}
		case BucketScheduled:
			// Horas HH:MM con ceros: la comparación de cadenas es cronológica.
			if x.Time != y.Time {
				return x.Time < y.Time
			}
		}
		if x.Label != y.Label {
			return x.Label < y.Label
		}
		return x.ID < y.ID
	}
}

// daysKey días restantes para ordenar; sin proyección numérica va al final.
func daysKey(a entity.Alert) int {
	if a.DaysRemaining == nil {
		return int(^uint(0) >> 1)
	}
	return *a.DaysRemaining
}
