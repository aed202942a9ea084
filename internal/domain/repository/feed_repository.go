package repository

import (
	"context"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// ExpiringEntityFeed fuente de entidades con vencimiento (documentos, recetas...).
type ExpiringEntityFeed interface {
	Name() string
	ListExpiring(ctx context.Context) ([]entity.ExpiringEntity, error)
}

// RecurrenceFeed fuente de fechas recurrentes anuales.
type RecurrenceFeed interface {
	Name() string
	ListRecurrences(ctx context.Context) ([]entity.Recurrence, error)
}

// ScheduleFeed fuente de eventos agendados; ListScheduled devuelve los del día indicado.
type ScheduleFeed interface {
	Name() string
	ListScheduled(ctx context.Context, day time.Time) ([]entity.ScheduledEvent, error)
}
