package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/memory"
)

var day = entity.NewDate(2026, 5, 10)

func TestLedger_AppendAsignaIDYOrden(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()

	id, err := l.Append(ctx, &entity.MovementEvent{Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = l.Append(ctx, &entity.MovementEvent{Date: entity.AddDays(day, -1), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 3})
	require.NoError(t, err)

	events, err := l.Query(ctx, entity.MovementFilter{ItemID: "gasas"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.DirectionOUT, events[0].Direction, "orden por fecha, no por inserción")
	assert.Equal(t, int64(2), events[0].Seq)
}

func TestLedger_RechazaEventosInvalidos(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()

	cases := []entity.MovementEvent{
		{Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 0},
		{Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: -4},
		{Date: day, Direction: "ADJUSTMENT", ItemID: "gasas", Quantity: 4},
		{Date: day, Direction: entity.DirectionIN, ItemID: "", Quantity: 4},
	}
	for _, c := range cases {
		c := c
		_, err := l.Append(ctx, &c)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	events, _ := l.Query(ctx, entity.MovementFilter{})
	assert.Empty(t, events)
}

func TestLedger_LoteTodoONada(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	_, err := l.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 5},
		{Date: day, Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 0},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	events, _ := l.Query(ctx, entity.MovementFilter{})
	assert.Empty(t, events, "un lote inválido no deja eventos a medias")

	_, err = l.Append(ctx, &entity.MovementEvent{ID: "fijo", Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 5})
	require.NoError(t, err)
	_, err = l.Append(ctx, &entity.MovementEvent{ID: "fijo", Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLedger_FiltroPorSujetoYFechas(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	_, err := l.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: day, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 5},
		{Date: day, Direction: entity.DirectionIN, ItemID: "gasas", SubjectID: "ana", Quantity: 7},
		{Date: entity.AddDays(day, 3), Direction: entity.DirectionOUT, ItemID: "gasas", SubjectID: "ana", Quantity: 1},
	})
	require.NoError(t, err)

	facility, _ := l.Query(ctx, entity.MovementFilter{ItemID: "gasas", Scope: entity.FacilityOnly()})
	assert.Len(t, facility, 1)
	ana, _ := l.Query(ctx, entity.MovementFilter{ItemID: "gasas", Scope: entity.OnlySubject("ana")})
	assert.Len(t, ana, 2)
	all, _ := l.Query(ctx, entity.MovementFilter{ItemID: "gasas", Scope: entity.AnySubject()})
	assert.Len(t, all, 3)

	to := entity.AddDays(day, 1)
	early, _ := l.Query(ctx, entity.MovementFilter{ItemID: "gasas", To: &to})
	assert.Len(t, early, 2)
	outs, _ := l.Query(ctx, entity.MovementFilter{Direction: entity.DirectionOUT})
	assert.Len(t, outs, 1)
}

// Anexos concurrentes de claves distintas: ningún lector ve un lote a medias
// y el saldo final coincide con la repetición completa.
func TestLedger_AnexosConcurrentes(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			item := []string{"gasas", "guantes"}[w%2]
			for i := 0; i < 50; i++ {
				_, err := l.AppendBatch(ctx, []*entity.MovementEvent{
					{Date: day, Direction: entity.DirectionIN, ItemID: item, Quantity: 2},
					{Date: day, Direction: entity.DirectionOUT, ItemID: item, Quantity: 2},
				})
				assert.NoError(t, err)
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				events, err := l.Query(ctx, entity.MovementFilter{})
				assert.NoError(t, err)
				assert.Equal(t, int64(0), inventory.Balance(events, "gasas", ""), "lote IN+OUT visible completo")
			}
		}()
	}
	wg.Wait()

	events, _ := l.Query(ctx, entity.MovementFilter{})
	assert.Len(t, events, 8*50*2)
}

func TestLedger_TopConsumed(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	_, err := l.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: day, Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 5},
		{Date: day, Direction: entity.DirectionOUT, ItemID: "guantes", Quantity: 9},
		{Date: day, Direction: entity.DirectionOUT, ItemID: "guantes", SubjectID: "ana", Quantity: 100},
		{Date: entity.AddDays(day, -40), Direction: entity.DirectionOUT, ItemID: "jabón", Quantity: 100},
	})
	require.NoError(t, err)

	top, err := l.TopConsumed(ctx, entity.AddDays(day, -30), day, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "guantes", top[0].ItemID)
	assert.Equal(t, "9", top[0].TotalOut.String(), "las asignaciones personales no cuentan")
}
