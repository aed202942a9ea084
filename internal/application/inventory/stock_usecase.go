package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

// StockUseCase consultas de saldo derivadas del libro. Cada operación hace una sola lectura
// (instantánea) y pliega los eventos; no hay contadores guardados.
type StockUseCase struct {
	ledger   repository.LedgerRepository
	catalog  repository.CatalogRepository
	subjects repository.SubjectRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	ledger repository.LedgerRepository,
	catalog repository.CatalogRepository,
	subjects repository.SubjectRepository,
) *StockUseCase {
	return &StockUseCase{ledger: ledger, catalog: catalog, subjects: subjects}
}

// BalanceOf saldo de (itemID, subjectID). subjectID vacío = stock general, no la suma de todos.
func (uc *StockUseCase) BalanceOf(ctx context.Context, itemID, subjectID string) (int64, error) {
	if itemID == "" {
		return 0, domain.ErrInvalidInput
	}
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{ItemID: itemID, Scope: entity.ScopeFor(subjectID)})
	if err != nil {
		return 0, fmt.Errorf("balance: consultar libro: %w", err)
	}
	return inv.Balance(events, itemID, subjectID), nil
}

// Balance saldo con nombre de artículo para la capa HTTP.
func (uc *StockUseCase) Balance(ctx context.Context, itemID, subjectID string) (*dto.BalanceDTO, error) {
	balance, err := uc.BalanceOf(ctx, itemID, subjectID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceDTO{
		ItemID:    itemID,
		ItemName:  itemName(ctx, uc.catalog, itemID),
		SubjectID: subjectID,
		Balance:   balance,
	}, nil
}

// Allocations stock general y asignaciones personales de un artículo. El total de asignaciones
// se suma explícitamente y se informa aparte del stock general.
func (uc *StockUseCase) Allocations(ctx context.Context, itemID string) (*dto.AllocationsDTO, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{ItemID: itemID, Scope: entity.AnySubject()})
	if err != nil {
		return nil, fmt.Errorf("allocations: consultar libro: %w", err)
	}
	out := &dto.AllocationsDTO{
		ItemID:          itemID,
		ItemName:        itemName(ctx, uc.catalog, itemID),
		FacilityBalance: inv.Balance(events, itemID, ""),
		Allocations:     []dto.SubjectAllocationDTO{},
	}
	for subjectID, balance := range inv.BalancesBySubject(events, itemID) {
		out.Allocations = append(out.Allocations, dto.SubjectAllocationDTO{
			SubjectID:   subjectID,
			SubjectName: subjectName(ctx, uc.subjects, subjectID),
			Balance:     balance,
		})
		out.TotalAllocated += balance
	}
	sort.Slice(out.Allocations, func(i, j int) bool {
		return out.Allocations[i].SubjectID < out.Allocations[j].SubjectID
	})
	return out, nil
}

// SubjectStock saldos personales de un residente en todos los artículos con movimientos.
func (uc *StockUseCase) SubjectStock(ctx context.Context, subjectID string) (*dto.SubjectStockDTO, error) {
	if subjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{Scope: entity.OnlySubject(subjectID)})
	if err != nil {
		return nil, fmt.Errorf("subject stock: consultar libro: %w", err)
	}
	out := &dto.SubjectStockDTO{
		SubjectID:   subjectID,
		SubjectName: subjectName(ctx, uc.subjects, subjectID),
		Items:       []dto.BalanceDTO{},
	}
	for itemID, balance := range inv.BalancesByItem(events, entity.OnlySubject(subjectID)) {
		out.Items = append(out.Items, dto.BalanceDTO{
			ItemID:    itemID,
			ItemName:  itemName(ctx, uc.catalog, itemID),
			SubjectID: subjectID,
			Balance:   balance,
		})
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].ItemID < out.Items[j].ItemID })
	return out, nil
}

// History kárdex de (itemID, subjectID) en [from, to]. El saldo inicial es el de los eventos
// anteriores a from; from o to nil = sin límite.
func (uc *StockUseCase) History(ctx context.Context, itemID, subjectID string, from, to *time.Time) (*dto.HistoryDTO, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("rango from > to: %w", domain.ErrInvalidInput)
	}
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{ItemID: itemID, Scope: entity.ScopeFor(subjectID), To: to})
	if err != nil {
		return nil, fmt.Errorf("history: consultar libro: %w", err)
	}
	out := &dto.HistoryDTO{ItemID: itemID, SubjectID: subjectID, Lines: []dto.HistoryLineDTO{}}
	running := int64(0)
	for _, e := range events {
		running += e.Signed()
		if from != nil && e.Date.Before(entity.DateOf(*from)) {
			out.OpeningBalance = running
			continue
		}
		out.Lines = append(out.Lines, dto.HistoryLineDTO{MovementDTO: ToMovementDTO(e), RunningBalance: running})
	}
	out.ClosingBalance = running
	return out, nil
}

// ListMovements consulta paginada del libro, más recientes primero.
func (uc *StockUseCase) ListMovements(ctx context.Context, f entity.MovementFilter, page dto.PageRequest) (*dto.MovementListDTO, error) {
	if f.Direction != "" && !f.Direction.Valid() {
		return nil, fmt.Errorf("sentido %q: %w", f.Direction, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	events, err := uc.ledger.Query(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := &dto.MovementListDTO{
		Movements: []dto.MovementDTO{},
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(events)},
	}
	for i := len(events) - 1 - page.Offset; i >= 0 && len(out.Movements) < page.Limit; i-- {
		out.Movements = append(out.Movements, ToMovementDTO(events[i]))
	}
	return out, nil
}

// itemName nombre del catálogo o la etiqueta de artículo desconocido; nunca falla.
func itemName(ctx context.Context, catalog repository.CatalogRepository, itemID string) string {
	if catalog == nil {
		return entity.UnknownItemName
	}
	item, err := catalog.GetItem(ctx, itemID)
	if err != nil {
		return entity.UnknownItemName
	}
	return item.DisplayName()
}

// subjectName nombre del residente o la etiqueta genérica; nunca falla.
func subjectName(ctx context.Context, subjects repository.SubjectRepository, subjectID string) string {
	if subjects == nil {
		return entity.UnknownSubjectName
	}
	sub, err := subjects.GetSubject(ctx, subjectID)
	if err != nil {
		return entity.UnknownSubjectName
	}
	return sub.Label()
}
