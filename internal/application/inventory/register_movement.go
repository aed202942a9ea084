package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
	"github.com/jhoicas/residencia-inventario/pkg/logger"
)

// RegisterMovementUseCase anexa movimientos al libro. No existe edición ni borrado:
// las correcciones son asientos compensatorios (ZeroBalance).
type RegisterMovementUseCase struct {
	ledger  repository.LedgerRepository
	catalog repository.CatalogRepository
	log     *logger.Logger
	metrics MetricsRecorder

	// serializa lectura de saldo y anexado en ZeroBalance
	zeroMu sync.Mutex
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	ledger repository.LedgerRepository,
	catalog repository.CatalogRepository,
	log *logger.Logger,
	metrics MetricsRecorder,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		ledger:  ledger,
		catalog: catalog,
		log:     log.Component("register_movement"),
		metrics: recorderOrNop(metrics),
	}
}

// MovementInputDTO entrada para registrar un movimiento.
type MovementInputDTO struct {
	ID        string
	Date      time.Time
	Direction entity.Direction
	ItemID    string
	SubjectID string
	Quantity  int64
	Note      string
}

func (in MovementInputDTO) toEvent() *entity.MovementEvent {
	return &entity.MovementEvent{
		ID:        in.ID,
		Date:      entity.DateOf(in.Date),
		Direction: in.Direction,
		ItemID:    in.ItemID,
		SubjectID: in.SubjectID,
		Quantity:  in.Quantity,
		Note:      in.Note,
	}
}

// RegisterMovement valida y anexa un movimiento. Devuelve el ID asignado.
// Un artículo fuera del catálogo no es fatal: se registra y se avisa en el log.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (string, error) {
	ids, err := uc.RegisterBatch(ctx, []MovementInputDTO{input})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// RegisterBatch valida y anexa todos los movimientos o ninguno.
func (uc *RegisterMovementUseCase) RegisterBatch(ctx context.Context, inputs []MovementInputDTO) ([]string, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("lote vacío: %w", domain.ErrInvalidInput)
	}
	events := make([]*entity.MovementEvent, 0, len(inputs))
	for i, in := range inputs {
		ev := in.toEvent()
		if err := ev.Validate(); err != nil {
			uc.metrics.IncRejected()
			return nil, fmt.Errorf("movimiento %d: %s: %w", i, err.Error(), domain.ErrValidation)
		}
		events = append(events, ev)
	}

	ids, err := uc.ledger.AppendBatch(ctx, events)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			uc.metrics.IncRejected()
		}
		return nil, err
	}

	for _, ev := range events {
		uc.metrics.IncAppended(string(ev.Direction))
		uc.warnIfOrphan(ctx, ev.ItemID)
		uc.log.Debug().
			Str("id", ev.ID).
			Str("item_id", ev.ItemID).
			Str("subject_id", ev.SubjectID).
			Str("direction", string(ev.Direction)).
			Int64("quantity", ev.Quantity).
			Msg("movimiento anexado")
	}
	return ids, nil
}

// ZeroBalance asiento compensatorio: anexa una salida igual al saldo positivo actual de la clave,
// dejándola en 0. ErrConflict si el saldo ya es ≤ 0.
// Las compensaciones se serializan dentro del proceso; varias instancias
// contra el mismo libro no se coordinan entre sí.
func (uc *RegisterMovementUseCase) ZeroBalance(ctx context.Context, itemID, subjectID string, date time.Time, note string) (string, int64, error) {
	if itemID == "" || date.IsZero() {
		return "", 0, domain.ErrInvalidInput
	}
	uc.zeroMu.Lock()
	defer uc.zeroMu.Unlock()
	events, err := uc.ledger.Query(ctx, entity.MovementFilter{ItemID: itemID, Scope: entity.ScopeFor(subjectID)})
	if err != nil {
		return "", 0, fmt.Errorf("zero balance: consultar libro: %w", err)
	}
	balance := inv.Balance(events, itemID, subjectID)
	if balance <= 0 {
		return "", balance, fmt.Errorf("saldo %d no es positivo: %w", balance, domain.ErrConflict)
	}
	if note == "" {
		note = "asiento compensatorio: saldo a cero"
	}
	id, err := uc.RegisterMovement(ctx, MovementInputDTO{
		Date:      date,
		Direction: entity.DirectionOUT,
		ItemID:    itemID,
		SubjectID: subjectID,
		Quantity:  balance,
		Note:      note,
	})
	if err != nil {
		return "", 0, err
	}
	uc.log.Info().Str("item_id", itemID).Str("subject_id", subjectID).Int64("quantity", balance).Msg("saldo compensado a cero")
	return id, balance, nil
}

func (uc *RegisterMovementUseCase) warnIfOrphan(ctx context.Context, itemID string) {
	if uc.catalog == nil {
		return
	}
	item, err := uc.catalog.GetItem(ctx, itemID)
	if err != nil {
		uc.log.Warn().Err(err).Str("item_id", itemID).Msg("catálogo no disponible")
		return
	}
	if item == nil {
		uc.log.Warn().Str("item_id", itemID).Msg("movimiento de artículo fuera del catálogo")
	}
}
