package dto

// AlertDTO aviso del feed unificado.
type AlertDTO struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Severity     string `json:"severity"`
	ExpiryStatus string `json:"expiry_status,omitempty"`
	SubjectRef   string `json:"subject_ref,omitempty"`
	Message      string `json:"message"`
	OccursOn     string `json:"occurs_on"`
	Time         string `json:"time,omitempty"`
	Days         int    `json:"days"`
}

// AlertFeedDTO respuesta de GET /api/alerts.
type AlertFeedDTO struct {
	AsOf   string     `json:"as_of"`
	Total  int        `json:"total"`
	Alerts []AlertDTO `json:"alerts"`
	// SkippedSources fuentes que fallaron y se omitieron.
	SkippedSources []string `json:"skipped_sources,omitempty"`
}
