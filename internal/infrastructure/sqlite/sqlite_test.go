package sqlite_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/sqlite"
)

var asOf = entity.NewDate(2026, 10, 19)

func newLedger(t *testing.T) *sqlite.LedgerRepo {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewLedgerRepository(db)
}

func TestLedger_OrdenPorFechaYSecuencia(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	_, err := ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: asOf, Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 5},
		{Date: entity.AddDays(asOf, -2), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 40},
		{Date: asOf, Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 1, Note: "segunda"},
	})
	require.NoError(t, err)

	events, err := ledger.Query(ctx, entity.MovementFilter{ItemID: "gasas"})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(40), events[0].Quantity)
	assert.Equal(t, int64(5), events[1].Quantity)
	assert.Equal(t, "segunda", events[2].Note)
	assert.True(t, events[0].Date.Equal(entity.AddDays(asOf, -2)))
	assert.Equal(t, int64(34), inv.Balance(events, "gasas", ""))
}

func TestLedger_FiltrosDeAlcanceYFechas(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	_, err := ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: entity.AddDays(asOf, -10), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 10},
		{Date: entity.AddDays(asOf, -5), Direction: entity.DirectionIN, ItemID: "gasas", SubjectID: "ana", Quantity: 3},
		{Date: entity.AddDays(asOf, -1), Direction: entity.DirectionOUT, ItemID: "gasas", SubjectID: "ana", Quantity: 1},
	})
	require.NoError(t, err)

	facility, err := ledger.Query(ctx, entity.MovementFilter{Scope: entity.FacilityOnly()})
	require.NoError(t, err)
	assert.Len(t, facility, 1)

	from := entity.AddDays(asOf, -5)
	personalOut, err := ledger.Query(ctx, entity.MovementFilter{
		Scope: entity.OnlySubject("ana"), From: &from, To: &asOf, Direction: entity.DirectionOUT,
	})
	require.NoError(t, err)
	require.Len(t, personalOut, 1)
	assert.Equal(t, int64(1), personalOut[0].Quantity)
}

func TestLedger_LoteConDuplicadoNoDejaRastro(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	_, err := ledger.Append(ctx, &entity.MovementEvent{ID: "e1", Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 1})
	require.NoError(t, err)

	_, err = ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{ID: "e2", Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 1},
		{ID: "e1", Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = ledger.Append(ctx, &entity.MovementEvent{Date: asOf, Direction: "X", ItemID: "gasas", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	events, err := ledger.Query(ctx, entity.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestLedger_AnexosConcurrentes(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, err := ledger.AppendBatch(ctx, []*entity.MovementEvent{
					{Date: asOf, Direction: entity.DirectionIN, ItemID: "jabón", Quantity: 2},
					{Date: asOf, Direction: entity.DirectionOUT, ItemID: "jabón", Quantity: 2},
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	events, err := ledger.Query(ctx, entity.MovementFilter{ItemID: "jabón"})
	require.NoError(t, err)
	assert.Len(t, events, 80)
	assert.Equal(t, int64(0), inv.Balance(events, "jabón", ""))
}

func TestLedger_TopConsumed(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	_, err := ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: entity.AddDays(asOf, -3), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 7},
		{Date: entity.AddDays(asOf, -2), Direction: entity.DirectionOUT, ItemID: "guantes", Quantity: 9},
		{Date: entity.AddDays(asOf, -2), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 4},
		{Date: entity.AddDays(asOf, -40), Direction: entity.DirectionOUT, ItemID: "jabón", Quantity: 99},
	})
	require.NoError(t, err)

	top, err := ledger.TopConsumed(ctx, entity.AddDays(asOf, -30), asOf, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "gasas", top[0].ItemID)
	assert.Equal(t, "11", top[0].TotalOut.String())
	assert.Equal(t, "guantes", top[1].ItemID)
}

func TestCatalog_UpsertYLectura(t *testing.T) {
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()
	catalog := sqlite.NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, catalog.Upsert(ctx, entity.Item{ID: "gasas", Name: "Gasas", Unit: "u", MinimumThreshold: 50}))
	require.NoError(t, catalog.Upsert(ctx, entity.Item{ID: "gasas", Name: "Gasas estériles", Unit: "u", MinimumThreshold: 100}))
	require.NoError(t, catalog.Upsert(ctx, entity.Item{ID: "alcohol", Name: "Alcohol 70%", Unit: "l", MinimumThreshold: 2}))

	it, err := catalog.GetItem(ctx, "gasas")
	require.NoError(t, err)
	assert.Equal(t, "Gasas estériles", it.Name)
	assert.Equal(t, int64(100), it.MinimumThreshold)

	missing, err := catalog.GetItem(ctx, "nada")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := catalog.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alcohol", list[0].ID)
}
