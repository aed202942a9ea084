// Package memory implementa los puertos del dominio en memoria: libro de movimientos,
// catálogo, registro de residentes y fuentes de alertas. Útil para desarrollo y tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.LedgerRepository      = (*Ledger)(nil)
	_ repository.ConsumptionRepository = (*Ledger)(nil)
)

// Ledger libro de movimientos solo-anexar protegido por RWMutex.
// Las lecturas copian los eventos bajo RLock: cada Query ve una instantánea completa.
type Ledger struct {
	mu     sync.RWMutex
	events []entity.MovementEvent
	ids    map[string]struct{}
	seq    int64
}

// NewLedger crea un libro vacío.
func NewLedger() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

// Append valida y anexa un evento.
func (l *Ledger) Append(ctx context.Context, ev *entity.MovementEvent) (string, error) {
	ids, err := l.AppendBatch(ctx, []*entity.MovementEvent{ev})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// AppendBatch valida todos los eventos antes de anexar ninguno.
func (l *Ledger) AppendBatch(_ context.Context, evs []*entity.MovementEvent) ([]string, error) {
	for i, ev := range evs {
		if ev == nil {
			return nil, fmt.Errorf("evento %d nulo: %w", i, domain.ErrValidation)
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("evento %d: %s: %w", i, err.Error(), domain.ErrValidation)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(evs))
	for _, ev := range evs {
		if ev.ID == "" {
			continue
		}
		if _, dup := l.ids[ev.ID]; dup {
			return nil, fmt.Errorf("evento %s ya existe: %w", ev.ID, domain.ErrConflict)
		}
		if _, dup := seen[ev.ID]; dup {
			return nil, fmt.Errorf("evento %s repetido en el lote: %w", ev.ID, domain.ErrConflict)
		}
		seen[ev.ID] = struct{}{}
	}

	out := make([]string, 0, len(evs))
	for _, ev := range evs {
		if ev.ID == "" {
			ev.ID = uuid.New().String()
		}
		l.seq++
		ev.Seq = l.seq
		ev.Date = entity.DateOf(ev.Date)
		l.events = append(l.events, *ev)
		l.ids[ev.ID] = struct{}{}
		out = append(out, ev.ID)
	}
	return out, nil
}

// Query devuelve una copia de los eventos que cumplen el filtro, ordenados por (fecha, seq).
func (l *Ledger) Query(_ context.Context, f entity.MovementFilter) ([]entity.MovementEvent, error) {
	l.mu.RLock()
	out := make([]entity.MovementEvent, 0, len(l.events))
	for _, e := range l.events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	l.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

// TopConsumed salidas del stock general por artículo en [from, to], de mayor a menor.
func (l *Ledger) TopConsumed(ctx context.Context, from, to time.Time, limit int) ([]repository.ConsumptionTotal, error) {
	events, err := l.Query(ctx, entity.MovementFilter{
		Scope:     entity.FacilityOnly(),
		From:      &from,
		To:        &to,
		Direction: entity.DirectionOUT,
	})
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int64)
	for _, e := range events {
		totals[e.ItemID] += e.Quantity
	}
	list := make([]repository.ConsumptionTotal, 0, len(totals))
	for id, q := range totals {
		list = append(list, repository.ConsumptionTotal{ItemID: id, TotalOut: decimal.NewFromInt(q)})
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].TotalOut.Equal(list[j].TotalOut) {
			return list[i].TotalOut.GreaterThan(list[j].TotalOut)
		}
		return list[i].ItemID < list[j].ItemID
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
