package postgres

import (
	"context"
	"fmt"
)

// schema esquema lógico del libro y de las fuentes de alertas. ledger_events es de solo
// inserción: la aplicación nunca emite UPDATE ni DELETE sobre ella.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ledger_events (
		seq         BIGSERIAL PRIMARY KEY,
		id          TEXT NOT NULL UNIQUE,
		occurred_on DATE NOT NULL,
		direction   TEXT NOT NULL CHECK (direction IN ('IN', 'OUT')),
		item_id     TEXT NOT NULL,
		subject_id  TEXT NOT NULL DEFAULT '',
		quantity    BIGINT NOT NULL CHECK (quantity > 0),
		note        TEXT NOT NULL DEFAULT '',
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_events_key ON ledger_events (item_id, subject_id, occurred_on)`,
	`CREATE TABLE IF NOT EXISTS items (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		category          TEXT NOT NULL DEFAULT '',
		unit              TEXT NOT NULL DEFAULT '',
		minimum_threshold BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id           TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		is_active    BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id              TEXT PRIMARY KEY,
		label           TEXT NOT NULL,
		subject_ref     TEXT NOT NULL DEFAULT '',
		expiration_date DATE,
		issue_date      DATE,
		validity_days   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS recurrences (
		id          TEXT PRIMARY KEY,
		label       TEXT NOT NULL,
		month_day   TEXT NOT NULL,
		subject_ref TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_events (
		id          TEXT PRIMARY KEY,
		label       TEXT NOT NULL,
		event_date  DATE NOT NULL,
		event_time  TEXT NOT NULL DEFAULT '',
		subject_ref TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_events_date ON scheduled_events (event_date)`,
}

// EnsureSchema crea las tablas que falten. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema (sentencia %d): %w", i, err)
		}
	}
	return nil
}
