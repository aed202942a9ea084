package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var (
	_ repository.ExpiringEntityFeed = (*DocumentFeed)(nil)
	_ repository.RecurrenceFeed     = (*RecurrenceFeed)(nil)
	_ repository.ScheduleFeed       = (*ScheduleFeed)(nil)
)

// DocumentFeed documentos con vencimiento fijo o derivado (emisión + vigencia).
type DocumentFeed struct {
	q Querier
}

// NewDocumentFeed construye la fuente de documentos.
func NewDocumentFeed(q Querier) *DocumentFeed { return &DocumentFeed{q: q} }

// Name nombre de la fuente.
func (f *DocumentFeed) Name() string { return "documentos" }

// Upsert crea o actualiza un documento.
func (f *DocumentFeed) Upsert(ctx context.Context, e entity.ExpiringEntity) error {
	query := `
		INSERT INTO documents (id, label, subject_ref, expiration_date, issue_date, validity_days)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label, subject_ref = EXCLUDED.subject_ref,
			expiration_date = EXCLUDED.expiration_date, issue_date = EXCLUDED.issue_date,
			validity_days = EXCLUDED.validity_days`
	_, err := f.q.Exec(ctx, query, e.ID, e.Label, e.SubjectRef, datePtr(e.ExpirationDate), datePtr(e.IssueDate), e.ValidityPeriodDays)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// ListExpiring todos los documentos; la clasificación la hace el agregador.
func (f *DocumentFeed) ListExpiring(ctx context.Context) ([]entity.ExpiringEntity, error) {
	rows, err := f.q.Query(ctx, `
		SELECT id, label, subject_ref, expiration_date, issue_date, validity_days
		FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []entity.ExpiringEntity
	for rows.Next() {
		var e entity.ExpiringEntity
		if err := rows.Scan(&e.ID, &e.Label, &e.SubjectRef, &e.ExpirationDate, &e.IssueDate, &e.ValidityPeriodDays); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		e.ExpirationDate = datePtr(e.ExpirationDate)
		e.IssueDate = datePtr(e.IssueDate)
		list = append(list, e)
	}
	return list, rows.Err()
}

// RecurrenceFeed fechas anuales (cumpleaños, aniversarios de ingreso).
type RecurrenceFeed struct {
	q Querier
}

// NewRecurrenceFeed construye la fuente.
func NewRecurrenceFeed(q Querier) *RecurrenceFeed { return &RecurrenceFeed{q: q} }

// Name nombre de la fuente.
func (f *RecurrenceFeed) Name() string { return "recurrencias" }

// Upsert crea o actualiza una recurrencia.
func (f *RecurrenceFeed) Upsert(ctx context.Context, r entity.Recurrence) error {
	query := `
		INSERT INTO recurrences (id, label, month_day, subject_ref) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label, month_day = EXCLUDED.month_day, subject_ref = EXCLUDED.subject_ref`
	if _, err := f.q.Exec(ctx, query, r.ID, r.Label, r.MonthDay, r.SubjectRef); err != nil {
		return fmt.Errorf("upsert recurrence: %w", err)
	}
	return nil
}

// ListRecurrences todas las recurrencias.
func (f *RecurrenceFeed) ListRecurrences(ctx context.Context) ([]entity.Recurrence, error) {
	rows, err := f.q.Query(ctx, `SELECT id, label, month_day, subject_ref FROM recurrences ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list recurrences: %w", err)
	}
	defer rows.Close()
	var list []entity.Recurrence
	for rows.Next() {
		var r entity.Recurrence
		if err := rows.Scan(&r.ID, &r.Label, &r.MonthDay, &r.SubjectRef); err != nil {
			return nil, fmt.Errorf("scan recurrence: %w", err)
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// ScheduleFeed agenda de eventos puntuales.
type ScheduleFeed struct {
	q Querier
}

// NewScheduleFeed construye la fuente.
func NewScheduleFeed(q Querier) *ScheduleFeed { return &ScheduleFeed{q: q} }

// Name nombre de la fuente.
func (f *ScheduleFeed) Name() string { return "agenda" }

// Upsert crea o actualiza un evento agendado.
func (f *ScheduleFeed) Upsert(ctx context.Context, s entity.ScheduledEvent) error {
	query := `
		INSERT INTO scheduled_events (id, label, event_date, event_time, subject_ref) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label, event_date = EXCLUDED.event_date,
			event_time = EXCLUDED.event_time, subject_ref = EXCLUDED.subject_ref`
	if _, err := f.q.Exec(ctx, query, s.ID, s.Label, dateOnly(s.Date), s.Time, s.SubjectRef); err != nil {
		return fmt.Errorf("upsert scheduled event: %w", err)
	}
	return nil
}

// ListScheduled eventos del día indicado.
func (f *ScheduleFeed) ListScheduled(ctx context.Context, day time.Time) ([]entity.ScheduledEvent, error) {
	rows, err := f.q.Query(ctx, `
		SELECT id, label, event_date, event_time, subject_ref
		FROM scheduled_events WHERE event_date = $1 ORDER BY event_time, id`, dateOnly(day))
	if err != nil {
		return nil, fmt.Errorf("list scheduled events: %w", err)
	}
	defer rows.Close()
	var list []entity.ScheduledEvent
	for rows.Next() {
		var s entity.ScheduledEvent
		if err := rows.Scan(&s.ID, &s.Label, &s.Date, &s.Time, &s.SubjectRef); err != nil {
			return nil, fmt.Errorf("scan scheduled event: %w", err)
		}
		s.Date = dateOnly(s.Date)
		list = append(list, s)
	}
	return list, rows.Err()
}
