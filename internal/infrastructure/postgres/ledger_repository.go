package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var (
	_ repository.LedgerRepository      = (*LedgerRepo)(nil)
	_ repository.ConsumptionRepository = (*LedgerRepo)(nil)
)

const ledgerColumns = `seq, id, occurred_on, direction, item_id, subject_id, quantity, note`

// LedgerRepo libro de movimientos sobre PostgreSQL. Solo INSERT y SELECT.
// El orden de inserción lo da la columna seq (BIGSERIAL).
type LedgerRepo struct {
	q  Querier
	tx *TxRunner
}

// NewLedgerRepository construye el adaptador sobre el pool.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{q: pool, tx: NewTxRunner(pool)}
}

// Append anexa un evento.
func (r *LedgerRepo) Append(ctx context.Context, ev *entity.MovementEvent) (string, error) {
	ids, err := r.AppendBatch(ctx, []*entity.MovementEvent{ev})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// AppendBatch anexa todos los eventos en una sola transacción.
func (r *LedgerRepo) AppendBatch(ctx context.Context, evs []*entity.MovementEvent) ([]string, error) {
	for i, ev := range evs {
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("evento %d: %s: %w", i, err.Error(), domain.ErrValidation)
		}
	}
	ids := make([]string, len(evs))
	err := r.tx.Run(ctx, func(q Querier) error {
		for i, ev := range evs {
			if ev.ID == "" {
				ev.ID = uuid.New().String()
			}
			ev.Date = dateOnly(ev.Date)
			query := `
				INSERT INTO ledger_events (id, occurred_on, direction, item_id, subject_id, quantity, note)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING seq`
			err := q.QueryRow(ctx, query,
				ev.ID, ev.Date, string(ev.Direction), ev.ItemID, ev.SubjectID, ev.Quantity, ev.Note,
			).Scan(&ev.Seq)
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("evento %q ya existe: %w", ev.ID, domain.ErrConflict)
				}
				return fmt.Errorf("insert ledger event: %w", err)
			}
			ids[i] = ev.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Query lista eventos según el filtro, ordenados por (fecha, seq).
func (r *LedgerRepo) Query(ctx context.Context, f entity.MovementFilter) ([]entity.MovementEvent, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_events WHERE TRUE`
	args := []any{}
	pos := 1
	if f.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, f.ItemID)
		pos++
	}
	switch f.Scope.Mode {
	case entity.ScopeFacility:
		query += " AND subject_id = ''"
	case entity.ScopeSubject:
		query += fmt.Sprintf(" AND subject_id = $%d", pos)
		args = append(args, f.Scope.SubjectID)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND occurred_on >= $%d", pos)
		args = append(args, dateOnly(*f.From))
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND occurred_on <= $%d", pos)
		args = append(args, dateOnly(*f.To))
		pos++
	}
	if f.Direction != "" {
		query += fmt.Sprintf(" AND direction = $%d", pos)
		args = append(args, string(f.Direction))
	}
	query += " ORDER BY occurred_on, seq"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()
	list := make([]entity.MovementEvent, 0)
	for rows.Next() {
		var e entity.MovementEvent
		var direction string
		if err := rows.Scan(&e.Seq, &e.ID, &e.Date, &direction, &e.ItemID, &e.SubjectID, &e.Quantity, &e.Note); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		e.Direction = entity.Direction(direction)
		e.Date = dateOnly(e.Date)
		list = append(list, e)
	}
	return list, rows.Err()
}

// TopConsumed salidas del stock general por artículo en [from, to], de mayor a menor.
func (r *LedgerRepo) TopConsumed(ctx context.Context, from, to time.Time, limit int) ([]repository.ConsumptionTotal, error) {
	query := `
		SELECT item_id, COALESCE(SUM(quantity), 0)::numeric
		FROM ledger_events
		WHERE subject_id = '' AND direction = 'OUT' AND occurred_on BETWEEN $1 AND $2
		GROUP BY item_id
		ORDER BY 2 DESC, item_id
		LIMIT $3`
	var lim any = limit
	if limit <= 0 {
		lim = nil // LIMIT NULL = sin límite
	}
	rows, err := r.q.Query(ctx, query, dateOnly(from), dateOnly(to), lim)
	if err != nil {
		return nil, fmt.Errorf("top consumed: %w", err)
	}
	defer rows.Close()
	list := make([]repository.ConsumptionTotal, 0)
	for rows.Next() {
		var t repository.ConsumptionTotal
		var total decimal.Decimal
		if err := rows.Scan(&t.ItemID, &total); err != nil {
			return nil, fmt.Errorf("scan top consumed: %w", err)
		}
		t.TotalOut = total
		list = append(list, t)
	}
	return list, rows.Err()
}
