package alerts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/residencia-inventario/internal/domain/alerts"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

func ids(list []entity.Alert) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func TestOrder_ParticionFija(t *testing.T) {
	two := 2
	in := []entity.Alert{
		{ID: "s-1030", Category: entity.AlertScheduledEvent, Time: "10:30", Label: "a"},
		{ID: "r-1", Category: entity.AlertRecurringDate, Label: "Cumpleaños"},
		{ID: "s-0900", Category: entity.AlertScheduledEvent, Time: "09:00", Label: "z"},
		{ID: "e-up", Category: entity.AlertDocumentExpiry, Severity: entity.SeverityMedium, OccursOn: entity.AddDays(asOf, 3)},
		{ID: "low", Category: entity.AlertLowStock, Severity: entity.SeverityMedium},
		{ID: "crit", Category: entity.AlertDepletionForecast, Severity: entity.SeverityHigh, DaysRemaining: &two},
		{ID: "e-over", Category: entity.AlertDocumentExpiry, Severity: entity.SeverityCritical, OccursOn: entity.AddDays(asOf, -4)},
		{ID: "s-allday", Category: entity.AlertScheduledEvent, Time: "", Label: "m"},
		{ID: "dep", Category: entity.AlertDepletionForecast, Severity: entity.SeverityCritical},
		{ID: "e-today", Category: entity.AlertDocumentExpiry, Severity: entity.SeverityHigh, OccursOn: asOf},
	}
	got := alerts.Order(in)
	assert.Equal(t, []string{
		"e-over", "e-today", "e-up",
		"dep", "crit", "low",
		"r-1",
		"s-allday", "s-0900", "s-1030",
	}, ids(got))
}

func TestOrder_Idempotente(t *testing.T) {
	in := []entity.Alert{
		{ID: "b", Category: entity.AlertScheduledEvent, Time: "08:00", Label: "x"},
		{ID: "a", Category: entity.AlertScheduledEvent, Time: "08:00", Label: "x"},
		{ID: "c", Category: entity.AlertRecurringDate, Label: "x"},
	}
	first := alerts.Order(in)
	second := alerts.Order(first)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c", "a", "b"}, ids(first))
	assert.Equal(t, "b", in[0].ID, "la entrada no se modifica")
}
