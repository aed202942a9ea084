package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var (
	_ repository.CatalogRepository = (*CatalogRepo)(nil)
	_ repository.SubjectRepository = (*SubjectRepo)(nil)
)

// CatalogRepo catálogo de artículos sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Upsert crea o actualiza un artículo (carga de semilla).
func (r *CatalogRepo) Upsert(ctx context.Context, it entity.Item) error {
	query := `
		INSERT INTO items (id, name, category, unit, minimum_threshold)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category,
			unit = EXCLUDED.unit, minimum_threshold = EXCLUDED.minimum_threshold`
	if _, err := r.q.Exec(ctx, query, it.ID, it.Name, it.Category, it.Unit, it.MinimumThreshold); err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// GetItem devuelve (nil, nil) si no existe.
func (r *CatalogRepo) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT id, name, category, unit, minimum_threshold FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(&it.ID, &it.Name, &it.Category, &it.Unit, &it.MinimumThreshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListItems artículos ordenados por ID.
func (r *CatalogRepo) ListItems(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, category, unit, minimum_threshold FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Unit, &it.MinimumThreshold); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SubjectRepo registro de residentes sobre PostgreSQL.
type SubjectRepo struct {
	q Querier
}

// NewSubjectRepository construye el adaptador.
func NewSubjectRepository(q Querier) *SubjectRepo {
	return &SubjectRepo{q: q}
}

// Upsert crea o actualiza un residente.
func (r *SubjectRepo) Upsert(ctx context.Context, s entity.Subject) error {
	query := `
		INSERT INTO subjects (id, display_name, is_active) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name, is_active = EXCLUDED.is_active`
	if _, err := r.q.Exec(ctx, query, s.ID, s.DisplayName, s.IsActive); err != nil {
		return fmt.Errorf("upsert subject: %w", err)
	}
	return nil
}

// GetSubject devuelve (nil, nil) si no existe.
func (r *SubjectRepo) GetSubject(ctx context.Context, id string) (*entity.Subject, error) {
	var s entity.Subject
	err := r.q.QueryRow(ctx, `SELECT id, display_name, is_active FROM subjects WHERE id = $1`, id).
		Scan(&s.ID, &s.DisplayName, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return &s, nil
}
