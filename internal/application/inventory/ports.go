package inventory

// MetricsRecorder métricas que emiten los casos de uso de inventario.
// *metrics.Metrics lo implementa; nil se reemplaza por un recorder mudo.
type MetricsRecorder interface {
	IncAppended(direction string)
	IncRejected()
	ObserveDaysRemaining(days int)
}

type nopRecorder struct{}

func (nopRecorder) IncAppended(string)       {}
func (nopRecorder) IncRejected()             {}
func (nopRecorder) ObserveDaysRemaining(int) {}

func recorderOrNop(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return nopRecorder{}
	}
	return m
}
