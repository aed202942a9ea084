package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición del stock general.
// Combina saldo, mínimo del catálogo y proyección de agotamiento para priorizar.
type ReplenishmentUseCase struct {
	catalog  repository.CatalogRepository
	forecast *ForecastUseCase
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(catalog repository.CatalogRepository, forecast *ForecastUseCase) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{catalog: catalog, forecast: forecast}
}

// GenerateReplenishmentList devuelve los artículos con saldo general por debajo de su mínimo,
// con la cantidad sugerida (2 × mínimo − saldo) y prioridad: nivel más urgente primero,
// luego menos días restantes, luego nombre.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, asOf time.Time) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("replenishment: catálogo: %w", err)
	}
	if len(items) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	forecasts, err := uc.forecast.ForecastAll(ctx, ids, asOf)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, it := range items {
		f := forecasts[it.ID]
		if f.CurrentBalance >= it.MinimumThreshold {
			continue
		}
		suggested := 2*it.MinimumThreshold - f.CurrentBalance
		if suggested < 0 {
			suggested = 0
		}
		s := dto.ReplenishmentSuggestionDTO{
			ItemID:            it.ID,
			ItemName:          it.DisplayName(),
			Category:          it.Category,
			Unit:              it.Unit,
			CurrentBalance:    f.CurrentBalance,
			MinimumThreshold:  it.MinimumThreshold,
			SuggestedOrderQty: suggested,
			DailyRate:         f.DailyRate.Round(4),
			Tier:              string(f.Tier),
		}
		if f.State == entity.DaysNumeric {
			days := f.DaysRemaining
			s.DaysRemaining = &days
		}
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if ra, rb := entity.Tier(a.Tier).Rank(), entity.Tier(b.Tier).Rank(); ra != rb {
			return ra > rb
		}
		if da, db := daysOrMax(a.DaysRemaining), daysOrMax(b.DaysRemaining); da != db {
			return da < db
		}
		return a.ItemName < b.ItemName
	})

	// Asignar prioridad (1 = más urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

func daysOrMax(d *int) int {
	if d == nil {
		return int(^uint(0) >> 1)
	}
	return *d
}
