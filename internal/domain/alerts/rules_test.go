package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/residencia-inventario/internal/domain/alerts"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

var asOf = entity.NewDate(2026, 10, 19)

func datePtr(t time.Time) *time.Time { return &t }

// Documento emitido hace 200 días con vigencia de 180 → vencido hace 20 días.
func TestExpiry_VigenciaDerivadaVencida(t *testing.T) {
	doc := entity.ExpiringEntity{
		ID:                 "doc-1",
		Label:              "Certificado médico",
		IssueDate:          datePtr(entity.AddDays(asOf, -200)),
		ValidityPeriodDays: 180,
		SubjectRef:         "ana",
	}
	a, ok, err := alerts.Expiry("documents", doc, "Ana Ruiz", asOf, 30)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entity.ExpiryOverdue, a.ExpiryStatus)
	assert.Equal(t, entity.SeverityCritical, a.Severity)
	assert.Equal(t, -20, a.Days)
	assert.Contains(t, a.Message, "20 días")
}

func TestExpiry_TresSubSeveridades(t *testing.T) {
	cases := []struct {
		offset int
		ok     bool
		status entity.ExpiryStatus
	}{
		{-1, true, entity.ExpiryOverdue},
		{0, true, entity.ExpiryDueToday},
		{1, true, entity.ExpiryUpcoming},
		{30, true, entity.ExpiryUpcoming},
		{31, false, ""},
	}
	for _, tc := range cases {
		doc := entity.ExpiringEntity{ID: "d", Label: "DNI", ExpirationDate: datePtr(entity.AddDays(asOf, tc.offset))}
		a, ok, err := alerts.Expiry("documents", doc, "Ana", asOf, 30)
		require.NoError(t, err)
		assert.Equal(t, tc.ok, ok, "offset %d", tc.offset)
		assert.Equal(t, tc.status, a.ExpiryStatus, "offset %d", tc.offset)
	}
}

func TestExpiry_RegistroMalFormado(t *testing.T) {
	_, ok, err := alerts.Expiry("documents", entity.ExpiringEntity{ID: "roto"}, "Ana", asOf, 30)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRecurring_SoloElMismoDia(t *testing.T) {
	r := entity.Recurrence{ID: "cumple-ana", Label: "Cumpleaños", MonthDay: "10-19", SubjectRef: "ana"}
	_, ok, err := alerts.Recurring("birthdays", r, "Ana", asOf)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = alerts.Recurring("birthdays", r, "Ana", entity.AddDays(asOf, 1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecurring_29FebreroEnAnioNoBisiesto(t *testing.T) {
	r := entity.Recurrence{ID: "x", Label: "Cumpleaños", MonthDay: "02-29"}
	_, ok, err := alerts.Recurring("birthdays", r, "Ana", entity.NewDate(2027, 2, 28))
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = alerts.Recurring("birthdays", r, "Ana", entity.NewDate(2028, 2, 28))
	require.NoError(t, err)
	assert.False(t, ok, "en año bisiesto se celebra el 29")
}

func TestScheduled_NormalizaHora(t *testing.T) {
	s := entity.ScheduledEvent{ID: "cita", Label: "Podólogo", Date: asOf, Time: "9:05"}
	a, ok, err := alerts.Scheduled("agenda", s, "Ana", asOf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "09:05", a.Time)

	_, ok, err = alerts.Scheduled("agenda", s, "Ana", entity.AddDays(asOf, 1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStock_ClasificaPorNivel(t *testing.T) {
	item := &entity.Item{ID: "gasas", Name: "Gasas", Unit: "u", MinimumThreshold: 100}
	five := entity.AddDays(asOf, 2)

	a, ok := alerts.Stock(item, entity.ForecastResult{AsOf: asOf, CurrentBalance: 20, Tier: entity.TierCritical,
		State: entity.DaysNumeric, DaysRemaining: 2, ProjectedExhaustionDate: &five})
	require.True(t, ok)
	assert.Equal(t, entity.AlertDepletionForecast, a.Category)

	a, ok = alerts.Stock(item, entity.ForecastResult{AsOf: asOf, CurrentBalance: 80, Tier: entity.TierSafe})
	require.True(t, ok)
	assert.Equal(t, entity.AlertLowStock, a.Category)

	_, ok = alerts.Stock(item, entity.ForecastResult{AsOf: asOf, CurrentBalance: 100, Tier: entity.TierSafe})
	assert.False(t, ok, "en el umbral no hay alerta")
}
