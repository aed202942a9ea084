package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var (
	_ repository.LedgerRepository      = (*LedgerRepo)(nil)
	_ repository.ConsumptionRepository = (*LedgerRepo)(nil)
)

// eventRow fila de ledger_events.
type eventRow struct {
	Seq        int64  `db:"seq"`
	ID         string `db:"id"`
	OccurredOn string `db:"occurred_on"`
	Direction  string `db:"direction"`
	ItemID     string `db:"item_id"`
	SubjectID  string `db:"subject_id"`
	Quantity   int64  `db:"quantity"`
	Note       string `db:"note"`
}

func (r eventRow) toEntity() (entity.MovementEvent, error) {
	date, err := entity.ParseDate(r.OccurredOn)
	if err != nil {
		return entity.MovementEvent{}, fmt.Errorf("evento %s: %w", r.ID, err)
	}
	return entity.MovementEvent{
		ID:        r.ID,
		Seq:       r.Seq,
		Date:      date,
		Direction: entity.Direction(r.Direction),
		ItemID:    r.ItemID,
		SubjectID: r.SubjectID,
		Quantity:  r.Quantity,
		Note:      r.Note,
	}, nil
}

// LedgerRepo libro de movimientos sobre SQLite.
type LedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepository construye el adaptador.
func NewLedgerRepository(db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// Append anexa un evento.
func (r *LedgerRepo) Append(ctx context.Context, ev *entity.MovementEvent) (string, error) {
	ids, err := r.AppendBatch(ctx, []*entity.MovementEvent{ev})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// AppendBatch anexa todos los eventos en una transacción.
func (r *LedgerRepo) AppendBatch(ctx context.Context, evs []*entity.MovementEvent) ([]string, error) {
	for i, ev := range evs {
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("evento %d: %s: %w", i, err.Error(), domain.ErrValidation)
		}
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, len(evs))
	for i, ev := range evs {
		if ev.ID == "" {
			ev.ID = uuid.New().String()
		}
		ev.Date = entity.DateOf(ev.Date)
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO ledger_events (id, occurred_on, direction, item_id, subject_id, quantity, note)
			VALUES (:id, :occurred_on, :direction, :item_id, :subject_id, :quantity, :note)`,
			eventRow{
				ID:         ev.ID,
				OccurredOn: ev.Date.Format(entity.DateLayout),
				Direction:  string(ev.Direction),
				ItemID:     ev.ItemID,
				SubjectID:  ev.SubjectID,
				Quantity:   ev.Quantity,
				Note:       ev.Note,
			})
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("evento %q ya existe: %w", ev.ID, domain.ErrConflict)
			}
			return nil, fmt.Errorf("insert ledger event: %w", err)
		}
		if ev.Seq, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("seq: %w", err)
		}
		ids[i] = ev.ID
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return ids, nil
}

// Query lista eventos según el filtro, ordenados por (fecha, seq).
func (r *LedgerRepo) Query(ctx context.Context, f entity.MovementFilter) ([]entity.MovementEvent, error) {
	var where []string
	var args []any
	if f.ItemID != "" {
		where = append(where, "item_id = ?")
		args = append(args, f.ItemID)
	}
	switch f.Scope.Mode {
	case entity.ScopeFacility:
		where = append(where, "subject_id = ''")
	case entity.ScopeSubject:
		where = append(where, "subject_id = ?")
		args = append(args, f.Scope.SubjectID)
	}
	if f.From != nil {
		where = append(where, "occurred_on >= ?")
		args = append(args, entity.DateOf(*f.From).Format(entity.DateLayout))
	}
	if f.To != nil {
		where = append(where, "occurred_on <= ?")
		args = append(args, entity.DateOf(*f.To).Format(entity.DateLayout))
	}
	if f.Direction != "" {
		where = append(where, "direction = ?")
		args = append(args, string(f.Direction))
	}
	query := `SELECT seq, id, occurred_on, direction, item_id, subject_id, quantity, note FROM ledger_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY occurred_on, seq"

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	list := make([]entity.MovementEvent, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

// TopConsumed salidas del stock general por artículo en [from, to], de mayor a menor.
func (r *LedgerRepo) TopConsumed(ctx context.Context, from, to time.Time, limit int) ([]repository.ConsumptionTotal, error) {
	if limit <= 0 {
		limit = -1 // LIMIT -1 = sin límite en SQLite
	}
	var rows []struct {
		ItemID string `db:"item_id"`
		Total  int64  `db:"total"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT item_id, SUM(quantity) AS total
		FROM ledger_events
		WHERE subject_id = '' AND direction = 'OUT' AND occurred_on BETWEEN ? AND ?
		GROUP BY item_id
		ORDER BY total DESC, item_id
		LIMIT ?`,
		entity.DateOf(from).Format(entity.DateLayout), entity.DateOf(to).Format(entity.DateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("top consumed: %w", err)
	}
	list := make([]repository.ConsumptionTotal, 0, len(rows))
	for _, row := range rows {
		list = append(list, repository.ConsumptionTotal{ItemID: row.ItemID, TotalOut: decimal.NewFromInt(row.Total)})
	}
	return list, nil
}
