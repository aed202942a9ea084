package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

// ForecastUseCase estimación de consumo y proyección de agotamiento.
// La fecha de referencia siempre llega como parámetro (asOf); nunca se lee el reloj aquí.
type ForecastUseCase struct {
	ledger  repository.LedgerRepository
	catalog repository.CatalogRepository
	policy  inv.Policy
	metrics MetricsRecorder
}

// NewForecastUseCase construye el caso de uso. La política debe venir validada.
func NewForecastUseCase(
	ledger repository.LedgerRepository,
	catalog repository.CatalogRepository,
	policy inv.Policy,
	metrics MetricsRecorder,
) *ForecastUseCase {
	return &ForecastUseCase{
		ledger:  ledger,
		catalog: catalog,
		policy:  policy,
		metrics: recorderOrNop(metrics),
	}
}

// Policy política de umbrales en uso.
func (uc *ForecastUseCase) Policy() inv.Policy {
	return uc.policy
}

// EstimateDailyRate consumo diario de (itemID, subjectID) en la ventana que termina en asOf.
// windowDays 0 usa la ventana configurada; negativo es ErrInvalidInput.
func (uc *ForecastUseCase) EstimateDailyRate(ctx context.Context, itemID, subjectID string, asOf time.Time, windowDays int) (inv.ConsumptionSample, error) {
	if windowDays == 0 {
		windowDays = uc.policy.WindowDays
	}
	if itemID == "" || windowDays < 0 {
		return inv.ConsumptionSample{}, domain.ErrInvalidInput
	}
	from := inv.WindowStart(asOf, windowDays)
	to := entity.DateOf(asOf)
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{
		ItemID:    itemID,
		Scope:     entity.ScopeFor(subjectID),
		From:      &from,
		To:        &to,
		Direction: entity.DirectionOUT,
	})
	if err != nil {
		return inv.ConsumptionSample{}, fmt.Errorf("estimate rate: consultar libro: %w", err)
	}
	return inv.Consumption(events, itemID, subjectID, asOf, windowDays), nil
}

// Forecast proyección de (itemID, subjectID) a asOf. Claves desconocidas dan UNKNOWN, nunca error
// (solo falla si el libro no responde).
func (uc *ForecastUseCase) Forecast(ctx context.Context, itemID, subjectID string, asOf time.Time) (entity.ForecastResult, error) {
	if itemID == "" {
		return entity.ForecastResult{}, domain.ErrInvalidInput
	}
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{ItemID: itemID, Scope: entity.ScopeFor(subjectID)})
	if err != nil {
		return entity.ForecastResult{}, fmt.Errorf("forecast: consultar libro: %w", err)
	}
	res := inv.Forecast(events, itemID, subjectID, asOf, uc.policy)
	if res.State == entity.DaysNumeric {
		uc.metrics.ObserveDaysRemaining(res.DaysRemaining)
	}
	return res, nil
}

// ForecastAll proyecciones del stock general para varios artículos sobre una única lectura del libro.
func (uc *ForecastUseCase) ForecastAll(ctx context.Context, itemIDs []string, asOf time.Time) (map[string]entity.ForecastResult, error) {
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{Scope: entity.FacilityOnly()})
	if err != nil {
		return nil, fmt.Errorf("forecast all: consultar libro: %w", err)
	}
	out := make(map[string]entity.ForecastResult, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = inv.Forecast(events, id, "", asOf, uc.policy)
	}
	return out, nil
}

// ForecastDTO proyección lista para la capa HTTP.
func (uc *ForecastUseCase) ForecastDTO(ctx context.Context, itemID, subjectID string, asOf time.Time) (*dto.ForecastDTO, error) {
	res, err := uc.Forecast(ctx, itemID, subjectID, asOf)
	if err != nil {
		return nil, err
	}
	out := ToForecastDTO(res)
	out.ItemName = itemName(ctx, uc.catalog, itemID)
	return &out, nil
}

// ConsumptionDTO consumo diario listo para la capa HTTP.
func (uc *ForecastUseCase) ConsumptionDTO(ctx context.Context, itemID, subjectID string, asOf time.Time, windowDays int) (*dto.ConsumptionDTO, error) {
	s, err := uc.EstimateDailyRate(ctx, itemID, subjectID, asOf, windowDays)
	if err != nil {
		return nil, err
	}
	return &dto.ConsumptionDTO{
		ItemID:     itemID,
		SubjectID:  subjectID,
		AsOf:       entity.DateOf(asOf).Format(entity.DateLayout),
		WindowDays: s.WindowDays,
		TotalOut:   s.TotalOut,
		DailyRate:  s.DailyRate,
	}, nil
}

// ToForecastDTO convierte el resultado de dominio.
func ToForecastDTO(res entity.ForecastResult) dto.ForecastDTO {
	out := dto.ForecastDTO{
		ItemID:              res.ItemID,
		SubjectID:           res.SubjectID,
		AsOf:                res.AsOf.Format(entity.DateLayout),
		CurrentBalance:      res.CurrentBalance,
		DailyRate:           res.DailyRate.Round(4),
		WindowDays:          res.WindowDays,
		DaysState:           string(res.State),
		ProjectedExhaustion: res.ExhaustionLabel(),
		DaysWithoutStock:    res.DaysWithoutStock,
		Tier:                string(res.Tier),
	}
	if res.State == entity.DaysNumeric {
		days := res.DaysRemaining
		out.DaysRemaining = &days
	}
	return out
}
