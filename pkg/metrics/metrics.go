package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas Prometheus del motor. Cada instancia tiene su propio registro
// para poder crear varias en tests. Todos los métodos aceptan receptor nil.
type Metrics struct {
	registry *prometheus.Registry

	EventsAppended  *prometheus.CounterVec
	EventsRejected  prometheus.Counter
	SourceFailures  *prometheus.CounterVec
	AlertsCollected *prometheus.GaugeVec
	DaysRemaining   prometheus.Histogram
}

// New crea y registra las métricas.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		EventsAppended: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_events_appended_total",
			Help: "Movimientos anexados al libro por sentido",
		}, []string{"direction"}),
		EventsRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "ledger_events_rejected_total",
			Help: "Movimientos rechazados por validación",
		}),
		SourceFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "alert_source_failures_total",
			Help: "Fallos de fuentes de alertas (fuente omitida, el resto continúa)",
		}, []string{"source"}),
		AlertsCollected: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "alerts_collected",
			Help: "Alertas devueltas en la última consulta por categoría",
		}, []string{"category"}),
		DaysRemaining: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "forecast_days_remaining",
			Help:    "Días restantes proyectados en cada pronóstico numérico",
			Buckets: []float64{0, 1, 3, 7, 14, 30, 60, 90, 180},
		}),
	}
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry registro subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncAppended cuenta un movimiento anexado.
func (m *Metrics) IncAppended(direction string) {
	if m == nil {
		return
	}
	m.EventsAppended.WithLabelValues(direction).Inc()
}

// IncRejected cuenta un movimiento rechazado.
func (m *Metrics) IncRejected() {
	if m == nil {
		return
	}
	m.EventsRejected.Inc()
}

// IncSourceFailure cuenta una fuente de alertas fallida.
func (m *Metrics) IncSourceFailure(source string) {
	if m == nil {
		return
	}
	m.SourceFailures.WithLabelValues(source).Inc()
}

// SetAlerts publica el número de alertas por categoría de la última consulta.
func (m *Metrics) SetAlerts(byCategory map[string]int) {
	if m == nil {
		return
	}
	m.AlertsCollected.Reset()
	for cat, n := range byCategory {
		m.AlertsCollected.WithLabelValues(cat).Set(float64(n))
	}
}

// ObserveDaysRemaining registra días restantes de un pronóstico numérico.
func (m *Metrics) ObserveDaysRemaining(days int) {
	if m == nil {
		return
	}
	m.DaysRemaining.Observe(float64(days))
}
