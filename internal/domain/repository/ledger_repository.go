package repository

//go:generate mockgen -source=ledger_repository.go -destination=mocks/ledger_mocks.go -package=mocks

import (
	"context"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// LedgerRepository define el puerto del libro de movimientos (solo anexar y consultar).
// No hay Update ni Delete: una corrección es un nuevo evento compensatorio.
//
// Query devuelve una instantánea consistente ordenada por (fecha, orden de inserción):
// un Append concurrente es visible completo o no es visible.
type LedgerRepository interface {
	// Append valida y anexa el evento; asigna ID si viene vacío y devuelve el ID.
	Append(ctx context.Context, ev *entity.MovementEvent) (string, error)
	// AppendBatch anexa todos los eventos o ninguno.
	AppendBatch(ctx context.Context, evs []*entity.MovementEvent) ([]string, error)
	Query(ctx context.Context, f entity.MovementFilter) ([]entity.MovementEvent, error)
}
