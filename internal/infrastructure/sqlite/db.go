// Package sqlite libro de movimientos y catálogo embebidos (despliegues de un solo nodo).
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Fechas como TEXT YYYY-MM-DD: el orden lexicográfico coincide con el cronológico.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ledger_events (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		occurred_on TEXT NOT NULL,
		direction   TEXT NOT NULL CHECK (direction IN ('IN', 'OUT')),
		item_id     TEXT NOT NULL,
		subject_id  TEXT NOT NULL DEFAULT '',
		quantity    INTEGER NOT NULL CHECK (quantity > 0),
		note        TEXT NOT NULL DEFAULT '',
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_events_key ON ledger_events (item_id, subject_id, occurred_on)`,
	`CREATE TABLE IF NOT EXISTS items (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		category          TEXT NOT NULL DEFAULT '',
		unit              TEXT NOT NULL DEFAULT '',
		minimum_threshold INTEGER NOT NULL DEFAULT 0
	)`,
}

// Open abre la base (ruta o "file::memory:") y crea el esquema.
// Una sola conexión: SQLite serializa escrituras y así las lecturas ven cada lote completo o nada.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema crea las tablas que falten en una transacción.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema (sentencia %d): %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// isUniqueViolation UNIQUE o PRIMARY KEY duplicada.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
