package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/inventory"
)

var day0 = entity.NewDate(2026, 3, 1)

func ev(seq int64, offset int, dir entity.Direction, item, subject string, qty int64) entity.MovementEvent {
	return entity.MovementEvent{
		ID:        item + "-" + string(dir),
		Seq:       seq,
		Date:      entity.AddDays(day0, offset),
		Direction: dir,
		ItemID:    item,
		SubjectID: subject,
		Quantity:  qty,
	}
}

func TestBalance_SumaConSigno(t *testing.T) {
	events := []entity.MovementEvent{
		ev(1, 0, entity.DirectionIN, "gasas", "", 100),
		ev(2, 1, entity.DirectionOUT, "gasas", "", 30),
		ev(3, 2, entity.DirectionOUT, "gasas", "", 5),
		ev(4, 2, entity.DirectionIN, "guantes", "", 50),
	}
	assert.Equal(t, int64(65), inventory.Balance(events, "gasas", ""))
	assert.Equal(t, int64(50), inventory.Balance(events, "guantes", ""))
	assert.Equal(t, int64(0), inventory.Balance(events, "jabón", ""), "artículo sin eventos: saldo 0")
}

// Stock general y asignaciones personales son bolsas disjuntas.
func TestBalance_SujetoVacioNoEsTodos(t *testing.T) {
	events := []entity.MovementEvent{
		ev(1, 0, entity.DirectionIN, "pañales", "", 200),
		ev(2, 0, entity.DirectionIN, "pañales", "ana", 40),
		ev(3, 1, entity.DirectionIN, "pañales", "luis", 25),
		ev(4, 2, entity.DirectionOUT, "pañales", "ana", 10),
	}
	assert.Equal(t, int64(200), inventory.Balance(events, "pañales", ""),
		"el stock general no debe incluir asignaciones personales")
	assert.Equal(t, int64(30), inventory.Balance(events, "pañales", "ana"))
	assert.Equal(t, int64(25), inventory.Balance(events, "pañales", "luis"))

	bySubject := inventory.BalancesBySubject(events, "pañales")
	assert.Equal(t, map[string]int64{"ana": 30, "luis": 25}, bySubject)
}

// La repetición del libro es conmutativa: el orden de inserción no cambia el saldo.
func TestBalance_IndependienteDelOrden(t *testing.T) {
	events := []entity.MovementEvent{
		ev(1, 0, entity.DirectionIN, "gasas", "", 70),
		ev(2, 1, entity.DirectionOUT, "gasas", "", 20),
		ev(3, 2, entity.DirectionIN, "gasas", "", 15),
		ev(4, 3, entity.DirectionOUT, "gasas", "", 90),
		ev(5, 3, entity.DirectionIN, "gasas", "ana", 9),
	}
	want := inventory.Balance(events, "gasas", "")
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]entity.MovementEvent(nil), events...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, inventory.Balance(shuffled, "gasas", ""))
	}
	assert.Equal(t, int64(-25), want)
}

func TestLastIn_UltimaPorFechaYOrden(t *testing.T) {
	events := []entity.MovementEvent{
		ev(1, 0, entity.DirectionIN, "gasas", "", 10),
		ev(2, 5, entity.DirectionIN, "gasas", "", 20),
		ev(3, 5, entity.DirectionIN, "gasas", "", 30),
		ev(4, 9, entity.DirectionOUT, "gasas", "", 60),
		ev(5, 9, entity.DirectionIN, "gasas", "ana", 99),
	}
	last, ok := inventory.LastIn(events, "gasas", "")
	assert.True(t, ok)
	assert.Equal(t, int64(30), last.Quantity)

	_, ok = inventory.LastIn(events, "guantes", "")
	assert.False(t, ok)
}
