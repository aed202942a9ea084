package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/residencia-inventario/internal/application/alerts"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/sqlite"
	"github.com/jhoicas/residencia-inventario/pkg/config"
	"github.com/jhoicas/residencia-inventario/pkg/logger"
)

// backend repositorios ya abiertos según LEDGER_BACKEND.
type backend struct {
	ledger      repository.LedgerRepository
	consumption repository.ConsumptionRepository
	catalog     repository.CatalogRepository
	subjects    repository.SubjectRepository
	sources     alerts.Sources
	close       func()
}

func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	var data *seed.Data
	if cfg.Ledger.SeedFile != "" {
		d, err := seed.Load(cfg.Ledger.SeedFile)
		if err != nil {
			return nil, err
		}
		data = d
		log.Info().Str("file", cfg.Ledger.SeedFile).
			Int("items", len(d.Items)).
			Int("movements", len(d.Movements)).
			Msg("semilla cargada")
	}

	switch cfg.Ledger.Backend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, data, log)
	case config.BackendSQLite:
		return openSQLite(ctx, cfg, data, log)
	default:
		return openMemory(ctx, data)
	}
}

// memoryStores repositorios en memoria; también alojan residentes y fuentes de alertas
// cuando el libro vive en SQLite.
type memoryStores struct {
	ledger      *memory.Ledger
	catalog     *memory.Catalog
	subjects    *memory.Subjects
	docs        *memory.ExpiringFeed
	recurrences *memory.RecurrenceFeed
	agenda      *memory.ScheduleFeed
}

func newMemoryStores() memoryStores {
	return memoryStores{
		ledger:      memory.NewLedger(),
		catalog:     memory.NewCatalog(),
		subjects:    memory.NewSubjects(),
		docs:        memory.NewExpiringFeed("documentos"),
		recurrences: memory.NewRecurrenceFeed("recurrencias"),
		agenda:      memory.NewScheduleFeed("agenda"),
	}
}

func (s memoryStores) sink() seed.Sink {
	return seed.Sink{
		Item:       func(_ context.Context, it entity.Item) error { s.catalog.Put(it); return nil },
		Subject:    func(_ context.Context, sub entity.Subject) error { s.subjects.Put(sub); return nil },
		Document:   func(_ context.Context, e entity.ExpiringEntity) error { s.docs.Add(e); return nil },
		Recurrence: func(_ context.Context, r entity.Recurrence) error { s.recurrences.Add(r); return nil },
		Schedule:   func(_ context.Context, ev entity.ScheduledEvent) error { s.agenda.Add(ev); return nil },
		Movements:  appendBatch(s.ledger),
	}
}

func (s memoryStores) sources() alerts.Sources {
	return alerts.Sources{
		Expiring:    []repository.ExpiringEntityFeed{s.docs},
		Recurrences: []repository.RecurrenceFeed{s.recurrences},
		Schedules:   []repository.ScheduleFeed{s.agenda},
	}
}

func openMemory(ctx context.Context, data *seed.Data) (*backend, error) {
	stores := newMemoryStores()
	if data != nil {
		if err := data.Apply(ctx, stores.sink()); err != nil {
			return nil, err
		}
	}
	return &backend{
		ledger:      stores.ledger,
		consumption: stores.ledger,
		catalog:     stores.catalog,
		subjects:    stores.subjects,
		sources:     stores.sources(),
		close:       func() {},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, data *seed.Data, log *logger.Logger) (*backend, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	ledger := postgres.NewLedgerRepository(pool)
	catalog := postgres.NewCatalogRepository(pool)
	subjects := postgres.NewSubjectRepository(pool)
	docs := postgres.NewDocumentFeed(pool)
	recurrences := postgres.NewRecurrenceFeed(pool)
	agenda := postgres.NewScheduleFeed(pool)

	if data != nil {
		movements, err := seedMovementsIfEmpty(ctx, ledger, log)
		if err != nil {
			pool.Close()
			return nil, err
		}
		err = data.Apply(ctx, seed.Sink{
			Item:       catalog.Upsert,
			Subject:    subjects.Upsert,
			Document:   docs.Upsert,
			Recurrence: recurrences.Upsert,
			Schedule:   agenda.Upsert,
			Movements:  movements,
		})
		if err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &backend{
		ledger:      ledger,
		consumption: ledger,
		catalog:     catalog,
		subjects:    subjects,
		sources: alerts.Sources{
			Expiring:    []repository.ExpiringEntityFeed{docs},
			Recurrences: []repository.RecurrenceFeed{recurrences},
			Schedules:   []repository.ScheduleFeed{agenda},
		},
		close: pool.Close,
	}, nil
}

// openSQLite libro y catálogo en SQLite; residentes y fuentes de alertas en memoria desde la semilla.
func openSQLite(ctx context.Context, cfg *config.Config, data *seed.Data, log *logger.Logger) (*backend, error) {
	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	ledger := sqlite.NewLedgerRepository(db)
	catalog := sqlite.NewCatalogRepository(db)
	stores := newMemoryStores()

	if data != nil {
		movements, err := seedMovementsIfEmpty(ctx, ledger, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		sink := stores.sink()
		sink.Item = catalog.Upsert
		sink.Movements = movements
		if err := data.Apply(ctx, sink); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return &backend{
		ledger:      ledger,
		consumption: ledger,
		catalog:     catalog,
		subjects:    stores.subjects,
		sources:     stores.sources(),
		close:       func() { _ = db.Close() },
	}, nil
}

func appendBatch(ledger repository.LedgerRepository) func(context.Context, []*entity.MovementEvent) error {
	return func(ctx context.Context, evs []*entity.MovementEvent) error {
		if len(evs) == 0 {
			return nil
		}
		_, err := ledger.AppendBatch(ctx, evs)
		return err
	}
}

// seedMovementsIfEmpty los movimientos semilla solo se anexan a un libro vacío; un libro
// persistente no se vuelve a sembrar en cada arranque.
func seedMovementsIfEmpty(ctx context.Context, ledger repository.LedgerRepository, log *logger.Logger) (func(context.Context, []*entity.MovementEvent) error, error) {
	existing, err := ledger.Query(ctx, entity.MovementFilter{Scope: entity.AnySubject()})
	if err != nil {
		return nil, fmt.Errorf("consultar libro: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("events", len(existing)).Msg("libro con movimientos, semilla de movimientos omitida")
		return nil, nil
	}
	return appendBatch(ledger), nil
}
