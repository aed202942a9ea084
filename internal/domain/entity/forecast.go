package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tier nivel de urgencia de agotamiento.
type Tier string

// Niveles de urgencia.
const (
	TierSafe     Tier = "SAFE"
	TierWarning  Tier = "WARNING"
	TierCritical Tier = "CRITICAL"
	TierDepleted Tier = "DEPLETED"
	TierUnknown  Tier = "UNKNOWN"
)

// Rank orden de urgencia (mayor = más urgente). UNKNOWN queda por debajo de SAFE.
func (t Tier) Rank() int {
	switch t {
	case TierDepleted:
		return 4
	case TierCritical:
		return 3
	case TierWarning:
		return 2
	case TierSafe:
		return 1
	default:
		return 0
	}
}

// DaysState estado explícito de los días restantes; reemplaza números mágicos.
type DaysState string

const (
	// DaysNumeric DaysRemaining contiene floor(saldo / consumo diario).
	DaysNumeric DaysState = "NUMERIC"
	// DaysUnbounded hay saldo pero no hay consumo: indeterminado.
	DaysUnbounded DaysState = "UNBOUNDED"
	// DaysDepleted saldo ≤ 0 con una entrada previa.
	DaysDepleted DaysState = "DEPLETED"
	// DaysNoHistory sin entradas registradas para la clave.
	DaysNoHistory DaysState = "NO_HISTORY"
)

// Label texto que acompaña a la fecha proyectada cuando no hay fecha.
func (s DaysState) Label() string {
	switch s {
	case DaysUnbounded:
		return "indeterminado"
	case DaysDepleted:
		return "agotado"
	case DaysNoHistory:
		return "sin historial"
	default:
		return ""
	}
}

// ForecastResult proyección de agotamiento para un par (artículo, sujeto).
type ForecastResult struct {
	ItemID         string
	SubjectID      string
	AsOf           time.Time
	CurrentBalance int64
	DailyRate      decimal.Decimal
	WindowDays     int
	State          DaysState
	DaysRemaining  int // válido solo si State == DaysNumeric
	// ProjectedExhaustionDate solo con State == DaysNumeric.
	ProjectedExhaustionDate *time.Time
	// DaysWithoutStock días estimados sin existencias (State == DaysDepleted).
	DaysWithoutStock int
	Tier             Tier
}

// ExhaustionLabel fecha proyectada como texto o el centinela correspondiente.
func (f ForecastResult) ExhaustionLabel() string {
	if f.ProjectedExhaustionDate != nil {
		return f.ProjectedExhaustionDate.Format(DateLayout)
	}
	return f.State.Label()
}
