package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var (
	_ repository.ExpiringEntityFeed = (*ExpiringFeed)(nil)
	_ repository.RecurrenceFeed     = (*RecurrenceFeed)(nil)
	_ repository.ScheduleFeed       = (*ScheduleFeed)(nil)
)

// ExpiringFeed fuente de vencimientos en memoria.
type ExpiringFeed struct {
	name string
	mu   sync.RWMutex
	list []entity.ExpiringEntity
}

// NewExpiringFeed crea la fuente con nombre (se usa en IDs de alerta y logs).
func NewExpiringFeed(name string, list ...entity.ExpiringEntity) *ExpiringFeed {
	return &ExpiringFeed{name: name, list: list}
}

// Name nombre de la fuente.
func (f *ExpiringFeed) Name() string { return f.name }

// Add agrega una entidad.
func (f *ExpiringFeed) Add(e entity.ExpiringEntity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, e)
}

// ListExpiring copia de las entidades.
func (f *ExpiringFeed) ListExpiring(_ context.Context) ([]entity.ExpiringEntity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]entity.ExpiringEntity(nil), f.list...), nil
}

// RecurrenceFeed fuente de fechas recurrentes en memoria.
type RecurrenceFeed struct {
	name string
	mu   sync.RWMutex
	list []entity.Recurrence
}

// NewRecurrenceFeed crea la fuente.
func NewRecurrenceFeed(name string, list ...entity.Recurrence) *RecurrenceFeed {
	return &RecurrenceFeed{name: name, list: list}
}

// Name nombre de la fuente.
func (f *RecurrenceFeed) Name() string { return f.name }

// Add agrega una recurrencia.
func (f *RecurrenceFeed) Add(r entity.Recurrence) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, r)
}

// ListRecurrences copia de las recurrencias.
func (f *RecurrenceFeed) ListRecurrences(_ context.Context) ([]entity.Recurrence, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]entity.Recurrence(nil), f.list...), nil
}

// ScheduleFeed agenda en memoria.
type ScheduleFeed struct {
	name string
	mu   sync.RWMutex
	list []entity.ScheduledEvent
}

// NewScheduleFeed crea la agenda.
func NewScheduleFeed(name string, list ...entity.ScheduledEvent) *ScheduleFeed {
	return &ScheduleFeed{name: name, list: list}
}

// Name nombre de la fuente.
func (f *ScheduleFeed) Name() string { return f.name }

// Add agrega un evento.
func (f *ScheduleFeed) Add(s entity.ScheduledEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, s)
}

// ListScheduled eventos del día indicado.
func (f *ScheduleFeed) ListScheduled(_ context.Context, day time.Time) ([]entity.ScheduledEvent, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	day = entity.DateOf(day)
	var out []entity.ScheduledEvent
	for _, s := range f.list {
		if entity.DateOf(s.Date).Equal(day) {
			out = append(out, s)
		}
	}
	return out, nil
}
