package entity

import "time"

// AlertCategory origen de una alerta.
type AlertCategory string

// Categorías de alerta.
const (
	AlertLowStock          AlertCategory = "LOW_STOCK"
	AlertDepletionForecast AlertCategory = "DEPLETION_FORECAST"
	AlertDocumentExpiry    AlertCategory = "DOCUMENT_EXPIRY"
	AlertScheduledEvent    AlertCategory = "SCHEDULED_EVENT"
	AlertRecurringDate     AlertCategory = "RECURRING_DATE"
)

// Severity ordinal de severidad (mayor = más grave).
type Severity int

// Severidades.
const (
	SeverityInfo Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String nombre de la severidad.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "info"
	}
}

// ExpiryStatus sub-severidad de un vencimiento.
type ExpiryStatus string

// Estados de vencimiento.
const (
	ExpiryOverdue  ExpiryStatus = "OVERDUE"
	ExpiryDueToday ExpiryStatus = "DUE_TODAY"
	ExpiryUpcoming ExpiryStatus = "UPCOMING"
)

// Alert aviso derivado; se recalcula en cada consulta y nunca se persiste.
type Alert struct {
	ID           string
	Category     AlertCategory
	Severity     Severity
	ExpiryStatus ExpiryStatus // solo DOCUMENT_EXPIRY
	SubjectRef   string
	Message      string
	OccursOn     time.Time
	Time         string // HH:MM, solo SCHEDULED_EVENT
	Days         int    // OccursOn − asOf en días (negativo = vencido)
	// Tier y DaysRemaining solo en alertas de stock.
	Tier          Tier
	DaysRemaining *int
	Label         string
}
