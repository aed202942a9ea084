// Package reporting contiene los reportes de solo lectura sobre el libro de movimientos.
package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

const reportTopConsumed = 5 // artículos en el ranking de consumo

// StockReportUseCase genera el reporte de stock por artículo.
//
// Fuentes: catálogo, libro (una sola lectura) y ConsumptionRepository para el ranking.
// No escribe nada.
type StockReportUseCase struct {
	ledger      repository.LedgerRepository
	catalog     repository.CatalogRepository
	consumption repository.ConsumptionRepository
	policy      inv.Policy
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	ledger repository.LedgerRepository,
	catalog repository.CatalogRepository,
	consumption repository.ConsumptionRepository,
	policy inv.Policy,
) *StockReportUseCase {
	return &StockReportUseCase{ledger: ledger, catalog: catalog, consumption: consumption, policy: policy}
}

// StockReport construye el StockReportDTO a la fecha asOf.
//
// Tres lecturas en paralelo:
//  1. ListItems            → filas del catálogo
//  2. Query(todo el libro) → saldos, asignaciones y pronósticos
//  3. TopConsumed(ventana) → ranking de consumo
func (uc *StockReportUseCase) StockReport(ctx context.Context, asOf time.Time) (*dto.StockReportDTO, error) {
	asOf = entity.DateOf(asOf)
	from := inv.WindowStart(asOf, uc.policy.WindowDays)

	// ── Goroutines para paralelizar las lecturas ──────────────────────────────
	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type eventsResult struct {
		events []entity.MovementEvent
		err    error
	}
	type topResult struct {
		totals []repository.ConsumptionTotal
		err    error
	}

	itemsCh := make(chan itemsResult, 1)
	eventsCh := make(chan eventsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		items, err := uc.catalog.ListItems(ctx)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		events, err := uc.ledger.Query(ctx, entity.MovementFilter{Scope: entity.AnySubject(), To: &asOf})
		eventsCh <- eventsResult{events, err}
	}()
	go func() {
		if uc.consumption == nil {
			topCh <- topResult{}
			return
		}
		totals, err := uc.consumption.TopConsumed(ctx, from, asOf, reportTopConsumed)
		topCh <- topResult{totals, err}
	}()

	items := <-itemsCh
	events := <-eventsCh
	top := <-topCh

	if items.err != nil {
		return nil, fmt.Errorf("reporte: catálogo: %w", items.err)
	}
	if events.err != nil {
		return nil, fmt.Errorf("reporte: libro: %w", events.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("reporte: top consumidos: %w", top.err)
	}

	// ── Filas: catálogo + artículos huérfanos referenciados por eventos ───────
	catalog := make(map[string]*entity.Item, len(items.items))
	for _, it := range items.items {
		catalog[it.ID] = it
	}
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	for id := range inv.BalancesByItem(events.events, entity.AnySubject()) {
		if _, ok := catalog[id]; !ok {
			ids = append(ids, id)
			catalog[id] = nil
		}
	}

	report := &dto.StockReportDTO{
		AsOf:        asOf.Format(entity.DateLayout),
		WindowDays:  uc.policy.WindowDays,
		Rows:        make([]dto.StockRowDTO, 0, len(ids)),
		TopConsumed: make([]dto.ConsumedItemDTO, 0, len(top.totals)),
		TierCounts:  make(map[string]int),
	}
	for _, id := range ids {
		row := buildRow(id, catalog[id], events.events, asOf, uc.policy)
		report.TierCounts[row.Tier]++
		report.Rows = append(report.Rows, row)
	}
	sortRows(report.Rows)

	for _, t := range top.totals {
		report.TopConsumed = append(report.TopConsumed, dto.ConsumedItemDTO{
			ItemID:   t.ItemID,
			ItemName: catalog[t.ItemID].DisplayName(),
			TotalOut: t.TotalOut,
		})
	}
	return report, nil
}

func buildRow(id string, item *entity.Item, events []entity.MovementEvent, asOf time.Time, p inv.Policy) dto.StockRowDTO {
	f := inv.Forecast(events, id, "", asOf, p)
	row := dto.StockRowDTO{
		ItemID:          id,
		ItemName:        item.DisplayName(),
		InCatalog:       item != nil,
		FacilityBalance: f.CurrentBalance,
		DailyRate:       f.DailyRate.Round(4),
		Tier:            string(f.Tier),
		Exhaustion:      f.ExhaustionLabel(),
	}
	for _, b := range inv.BalancesBySubject(events, id) {
		row.TotalAllocated += b
	}
	if item != nil {
		row.Category = item.Category
		row.Unit = item.Unit
		row.MinimumThreshold = item.MinimumThreshold
		row.BelowThreshold = f.CurrentBalance < item.MinimumThreshold
	}
	if f.State == entity.DaysNumeric {
		days := f.DaysRemaining
		row.DaysRemaining = &days
	}
	return row
}

// sortRows orden alfabético español (ñ tras n; las tildes solo desempatan), luego por ID.
func sortRows(rows []dto.StockRowDTO) {
	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		if cmp := c.CompareString(rows[i].ItemName, rows[j].ItemName); cmp != 0 {
			return cmp < 0
		}
		return rows[i].ItemID < rows[j].ItemID
	})
}
