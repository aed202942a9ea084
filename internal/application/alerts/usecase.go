// Package alerts reúne las fuentes de avisos (stock, vencimientos, fechas recurrentes y
// agenda) en un único feed ordenado.
package alerts

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/application/inventory"
	rules "github.com/jhoicas/residencia-inventario/internal/domain/alerts"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
	"github.com/jhoicas/residencia-inventario/pkg/logger"
)

// stockSource nombre de la fuente de alertas de stock general.
const stockSource = "stock"

// MetricsRecorder métricas del agregador; *metrics.Metrics lo implementa.
type MetricsRecorder interface {
	IncSourceFailure(source string)
	SetAlerts(byCategory map[string]int)
}

type nopRecorder struct{}

func (nopRecorder) IncSourceFailure(string)  {}
func (nopRecorder) SetAlerts(map[string]int) {}

// Sources fuentes externas del agregador. Cualquiera puede ir vacía.
type Sources struct {
	Expiring    []repository.ExpiringEntityFeed
	Recurrences []repository.RecurrenceFeed
	Schedules   []repository.ScheduleFeed
}

// AlertsUseCase agrega alertas de todas las fuentes. Cada fuente es independiente:
// si una falla se omite y el resto sigue aportando.
type AlertsUseCase struct {
	catalog     repository.CatalogRepository
	subjects    repository.SubjectRepository
	forecast    *inventory.ForecastUseCase
	sources     Sources
	horizonDays int
	log         *logger.Logger
	metrics     MetricsRecorder

	// inflight comparte una recolección entre peticiones simultáneas del mismo día.
	inflight singleflight.Group
}

// NewAlertsUseCase construye el agregador. horizonDays ≤ 0 usa DefaultExpiryHorizonDays.
func NewAlertsUseCase(
	catalog repository.CatalogRepository,
	subjects repository.SubjectRepository,
	forecast *inventory.ForecastUseCase,
	sources Sources,
	horizonDays int,
	log *logger.Logger,
	metrics MetricsRecorder,
) *AlertsUseCase {
	if horizonDays <= 0 {
		horizonDays = rules.DefaultExpiryHorizonDays
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &AlertsUseCase{
		catalog:     catalog,
		subjects:    subjects,
		forecast:    forecast,
		sources:     sources,
		horizonDays: horizonDays,
		log:         log.Component("alerts"),
		metrics:     metrics,
	}
}

// Feed resultado de una recolección.
type Feed struct {
	AsOf           time.Time
	Alerts         []entity.Alert
	SkippedSources []string
}

type source struct {
	name string
	run  func(context.Context) ([]entity.Alert, error)
}

type sourceResult struct {
	index  int
	name   string
	alerts []entity.Alert
	err    error
}

// CollectAlerts recalcula todas las alertas para asOf. Las fuentes corren en paralelo y el
// resultado se ordena por categoría fija, así que la salida no depende del orden de llegada.
// Solo devuelve error si el contexto se cancela.
func (uc *AlertsUseCase) CollectAlerts(ctx context.Context, asOf time.Time) (*Feed, error) {
	asOf = entity.DateOf(asOf)

	jobs := []source{{stockSource, func(ctx context.Context) ([]entity.Alert, error) { return uc.stockAlerts(ctx, asOf) }}}
	for _, f := range uc.sources.Expiring {
		f := f
		jobs = append(jobs, source{f.Name(), func(ctx context.Context) ([]entity.Alert, error) { return uc.expiryAlerts(ctx, f, asOf) }})
	}
	for _, f := range uc.sources.Recurrences {
		f := f
		jobs = append(jobs, source{f.Name(), func(ctx context.Context) ([]entity.Alert, error) { return uc.recurringAlerts(ctx, f, asOf) }})
	}
	for _, f := range uc.sources.Schedules {
		f := f
		jobs = append(jobs, source{f.Name(), func(ctx context.Context) ([]entity.Alert, error) { return uc.scheduledAlerts(ctx, f, asOf) }})
	}

	// ── Una goroutine por fuente; canal con buffer para que ninguna se bloquee ──
	results := make(chan sourceResult, len(jobs))
	for i, job := range jobs {
		go func(i int, job source) {
			defer func() {
				if r := recover(); r != nil {
					results <- sourceResult{index: i, name: job.name, err: fmt.Errorf("panic: %v", r)}
				}
			}()
			list, err := job.run(ctx)
			results <- sourceResult{index: i, name: job.name, alerts: list, err: err}
		}(i, job)
	}

	collected := make([]sourceResult, len(jobs))
	for range jobs {
		select {
		case r := <-results:
			collected[r.index] = r
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	feed := &Feed{AsOf: asOf, Alerts: []entity.Alert{}}
	for _, r := range collected {
		if r.err != nil {
			uc.log.Error().Err(r.err).Str("source", r.name).Msg("fuente de alertas omitida")
			uc.metrics.IncSourceFailure(r.name)
			feed.SkippedSources = append(feed.SkippedSources, r.name)
			continue
		}
		feed.Alerts = append(feed.Alerts, r.alerts...)
	}
	feed.Alerts = rules.Order(feed.Alerts)

	byCategory := make(map[string]int)
	for _, a := range feed.Alerts {
		byCategory[string(a.Category)]++
	}
	uc.metrics.SetAlerts(byCategory)
	return feed, nil
}

// CollectAlertsDTO feed listo para la capa HTTP.
// Peticiones simultáneas con el mismo asOf comparten una sola recolección.
func (uc *AlertsUseCase) CollectAlertsDTO(ctx context.Context, asOf time.Time) (*dto.AlertFeedDTO, error) {
	key := entity.DateOf(asOf).Format(entity.DateLayout)
	// la recolección compartida no hereda la cancelación de quien la inició
	shared := context.WithoutCancel(ctx)
	ch := uc.inflight.DoChan(key, func() (interface{}, error) {
		return uc.CollectAlerts(shared, asOf)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	feed := res.Val.(*Feed)
	out := &dto.AlertFeedDTO{
		AsOf:           feed.AsOf.Format(entity.DateLayout),
		Total:          len(feed.Alerts),
		Alerts:         make([]dto.AlertDTO, 0, len(feed.Alerts)),
		SkippedSources: feed.SkippedSources,
	}
	for _, a := range feed.Alerts {
		out.Alerts = append(out.Alerts, ToAlertDTO(a))
	}
	return out, nil
}

// ToAlertDTO convierte una alerta de dominio.
func ToAlertDTO(a entity.Alert) dto.AlertDTO {
	return dto.AlertDTO{
		ID:           a.ID,
		Category:     string(a.Category),
		Severity:     a.Severity.String(),
		ExpiryStatus: string(a.ExpiryStatus),
		SubjectRef:   a.SubjectRef,
		Message:      a.Message,
		OccursOn:     a.OccursOn.Format(entity.DateLayout),
		Time:         a.Time,
		Days:         a.Days,
	}
}

// stockAlerts stock general de los artículos del catálogo bajo su mínimo, sobre una sola lectura del libro.
func (uc *AlertsUseCase) stockAlerts(ctx context.Context, asOf time.Time) ([]entity.Alert, error) {
	items, err := uc.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	forecasts, err := uc.forecast.ForecastAll(ctx, ids, asOf)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Alert, 0)
	for _, it := range items {
		if a, ok := rules.Stock(it, forecasts[it.ID]); ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (uc *AlertsUseCase) expiryAlerts(ctx context.Context, feed repository.ExpiringEntityFeed, asOf time.Time) ([]entity.Alert, error) {
	list, err := feed.ListExpiring(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Alert, 0)
	for _, e := range list {
		a, ok, err := rules.Expiry(feed.Name(), e, uc.subjectName(ctx, e.SubjectRef), asOf, uc.horizonDays)
		if err != nil {
			uc.skipRecord(feed.Name(), e.ID, err)
			continue
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (uc *AlertsUseCase) recurringAlerts(ctx context.Context, feed repository.RecurrenceFeed, asOf time.Time) ([]entity.Alert, error) {
	list, err := feed.ListRecurrences(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Alert, 0)
	for _, r := range list {
		a, ok, err := rules.Recurring(feed.Name(), r, uc.subjectName(ctx, r.SubjectRef), asOf)
		if err != nil {
			uc.skipRecord(feed.Name(), r.ID, err)
			continue
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (uc *AlertsUseCase) scheduledAlerts(ctx context.Context, feed repository.ScheduleFeed, asOf time.Time) ([]entity.Alert, error) {
	list, err := feed.ListScheduled(ctx, asOf)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Alert, 0)
	for _, s := range list {
		a, ok, err := rules.Scheduled(feed.Name(), s, uc.subjectName(ctx, s.SubjectRef), asOf)
		if err != nil {
			uc.skipRecord(feed.Name(), s.ID, err)
			continue
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (uc *AlertsUseCase) skipRecord(source, id string, err error) {
	uc.log.Warn().Err(err).Str("source", source).Str("record_id", id).Msg("registro mal formado omitido")
}

// subjectName nombre legible del sujeto; los fallos de búsqueda nunca cancelan la alerta.
func (uc *AlertsUseCase) subjectName(ctx context.Context, id string) string {
	if uc.subjects == nil || id == "" {
		return entity.UnknownSubjectName
	}
	sub, err := uc.subjects.GetSubject(ctx, id)
	if err != nil {
		return entity.UnknownSubjectName
	}
	return sub.Label()
}
