package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/inventory"
)

var asOf = entity.NewDate(2026, 6, 30)

// gauze construye un libro con saldo `balance` y `out` unidades consumidas en los últimos 30 días.
func gauze(balance, out int64) []entity.MovementEvent {
	return []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -60), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: balance + out},
		{Seq: 2, Date: entity.AddDays(asOf, -20), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: out / 2},
		{Seq: 3, Date: entity.AddDays(asOf, -1), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: out - out/2},
	}
}

func TestConsumption_DivideEntreVentana(t *testing.T) {
	s := inventory.Consumption(gauze(50, 300), "gasas", "", asOf, 30)
	assert.Equal(t, int64(300), s.TotalOut)
	assert.True(t, s.DailyRate.Equal(decimal.NewFromInt(10)), "300 / 30 = 10, got %s", s.DailyRate)
}

func TestConsumption_VentanaInclusiva(t *testing.T) {
	events := []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -30), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 15},
		{Seq: 2, Date: asOf, Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 15},
		{Seq: 3, Date: entity.AddDays(asOf, -31), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 1000},
		{Seq: 4, Date: entity.AddDays(asOf, 1), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 1000},
	}
	s := inventory.Consumption(events, "gasas", "", asOf, 30)
	assert.Equal(t, int64(30), s.TotalOut, "solo cuentan los extremos [asOf-30, asOf]")
	assert.True(t, s.DailyRate.Equal(decimal.NewFromInt(1)))
}

func TestConsumption_EventosAntiguosDanCero(t *testing.T) {
	events := []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -90), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 100},
		{Seq: 2, Date: entity.AddDays(asOf, -45), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 40},
	}
	s := inventory.Consumption(events, "gasas", "", asOf, 30)
	assert.True(t, s.DailyRate.IsZero())
}

// Escenario gasas: saldo 50, 300 salidas en 30 días → 10/día, 5 días → WARNING.
func TestForecast_EscenarioGasas(t *testing.T) {
	f := inventory.Forecast(gauze(50, 300), "gasas", "", asOf, inventory.DefaultPolicy())
	assert.Equal(t, int64(50), f.CurrentBalance)
	assert.True(t, f.DailyRate.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, entity.DaysNumeric, f.State)
	assert.Equal(t, 5, f.DaysRemaining)
	assert.Equal(t, entity.TierWarning, f.Tier)
	require.NotNil(t, f.ProjectedExhaustionDate)
	assert.Equal(t, "2026-07-05", f.ExhaustionLabel())
}

func TestForecast_FronterasDeNivel(t *testing.T) {
	cases := []struct {
		balance int64
		want    entity.Tier
	}{
		{30, entity.TierCritical}, // 3 días
		{39, entity.TierCritical}, // floor(3.9) = 3
		{40, entity.TierWarning},  // 4 días
		{70, entity.TierWarning},  // 7 días
		{80, entity.TierSafe},     // 8 días
		{1, entity.TierCritical},  // 0 días
	}
	for _, tc := range cases {
		f := inventory.Forecast(gauze(tc.balance, 300), "gasas", "", asOf, inventory.DefaultPolicy())
		assert.Equal(t, tc.want, f.Tier, "saldo %d", tc.balance)
	}
}

// Con el mismo consumo, un saldo menor nunca da un nivel menos urgente.
func TestForecast_NivelesMonotonos(t *testing.T) {
	p := inventory.DefaultPolicy()
	prev := inventory.Forecast(gauze(1, 300), "gasas", "", asOf, p)
	for balance := int64(2); balance <= 200; balance++ {
		f := inventory.Forecast(gauze(balance, 300), "gasas", "", asOf, p)
		assert.LessOrEqual(t, f.Tier.Rank(), prev.Tier.Rank(), "saldo %d", balance)
		prev = f
	}
}

// Artículo nunca comprado y sin salidas → UNKNOWN, no DEPLETED.
func TestForecast_SinHistorialEsUnknown(t *testing.T) {
	f := inventory.Forecast(nil, "termómetros", "", asOf, inventory.DefaultPolicy())
	assert.Equal(t, int64(0), f.CurrentBalance)
	assert.True(t, f.DailyRate.IsZero())
	assert.Equal(t, entity.TierUnknown, f.Tier)
	assert.Equal(t, entity.DaysNoHistory, f.State)
	assert.Nil(t, f.ProjectedExhaustionDate)
}

func TestForecast_SaldoSinConsumoEsIndeterminado(t *testing.T) {
	events := []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -100), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 10},
	}
	f := inventory.Forecast(events, "gasas", "", asOf, inventory.DefaultPolicy())
	assert.Equal(t, entity.TierUnknown, f.Tier)
	assert.Equal(t, entity.DaysUnbounded, f.State)
	assert.Equal(t, "indeterminado", f.ExhaustionLabel())
}

func TestForecast_AgotadoCalculaDiasSinStock(t *testing.T) {
	// Consumo de 60 en la ventana → 2/día. Última entrada de 20 hace 15 días:
	// 15 − floor(20/2) = 5 días sin stock.
	events := []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -25), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 40},
		{Seq: 2, Date: entity.AddDays(asOf, -15), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 20},
		{Seq: 3, Date: entity.AddDays(asOf, -5), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 60},
	}
	f := inventory.Forecast(events, "gasas", "", asOf, inventory.DefaultPolicy())
	assert.Equal(t, entity.TierDepleted, f.Tier)
	assert.Equal(t, entity.DaysDepleted, f.State)
	assert.Equal(t, 5, f.DaysWithoutStock)
	assert.Equal(t, "agotado", f.ExhaustionLabel())
}

func TestForecast_CocienteExactoConTasaPeriodica(t *testing.T) {
	// 20 salidas en 30 días → 0,666… por día; 2 unidades cubren exactamente 3 días.
	f := inventory.Forecast(gauze(2, 20), "gasas", "", asOf, inventory.DefaultPolicy())
	require.Equal(t, entity.DaysNumeric, f.State)
	assert.Equal(t, 3, f.DaysRemaining)
	assert.Equal(t, entity.AddDays(asOf, 3), *f.ProjectedExhaustionDate)
	assert.Equal(t, entity.TierCritical, f.Tier)

	f = inventory.Forecast(gauze(2, 20), "gasas", "", asOf, inventory.Policy{WindowDays: 30, CriticalDays: 2, WarningDays: 7})
	assert.Equal(t, 3, f.DaysRemaining)
	assert.Equal(t, entity.TierWarning, f.Tier)
}

func TestForecast_DiasSinStockConTasaPeriodica(t *testing.T) {
	// Última entrada de 2 hace 10 días a 20/30 por día: cubre 3 días → 7 sin stock.
	events := []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -40), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 18},
		{Seq: 2, Date: entity.AddDays(asOf, -10), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 2},
		{Seq: 3, Date: entity.AddDays(asOf, -5), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 20},
	}
	f := inventory.Forecast(events, "gasas", "", asOf, inventory.DefaultPolicy())
	assert.Equal(t, entity.DaysDepleted, f.State)
	assert.Equal(t, 7, f.DaysWithoutStock)
}

func TestConsumptionSample_CoveredDays(t *testing.T) {
	s := inventory.ConsumptionSample{TotalOut: 20, WindowDays: 30}
	assert.Equal(t, 3, s.CoveredDays(2))
	assert.Equal(t, 4, s.CoveredDays(3))
	assert.Equal(t, 0, inventory.ConsumptionSample{WindowDays: 30}.CoveredDays(5))
}

func TestForecast_AgotadoSinEntradasEsSinHistorial(t *testing.T) {
	events := []entity.MovementEvent{
		{Seq: 1, Date: entity.AddDays(asOf, -2), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 3},
	}
	f := inventory.Forecast(events, "gasas", "", asOf, inventory.DefaultPolicy())
	assert.Equal(t, entity.TierDepleted, f.Tier)
	assert.Equal(t, entity.DaysNoHistory, f.State)
	assert.Equal(t, int64(-3), f.CurrentBalance)
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, inventory.DefaultPolicy().Validate())
	assert.Error(t, inventory.Policy{WindowDays: 0, CriticalDays: 3, WarningDays: 7}.Validate())
	assert.Error(t, inventory.Policy{WindowDays: 30, CriticalDays: 8, WarningDays: 7}.Validate())
	assert.Error(t, inventory.Policy{WindowDays: 30, CriticalDays: -1, WarningDays: 7}.Validate())
}
