package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

type itemRow struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Category         string `db:"category"`
	Unit             string `db:"unit"`
	MinimumThreshold int64  `db:"minimum_threshold"`
}

func (r itemRow) toEntity() *entity.Item {
	return &entity.Item{ID: r.ID, Name: r.Name, Category: r.Category, Unit: r.Unit, MinimumThreshold: r.MinimumThreshold}
}

// CatalogRepo catálogo de artículos sobre SQLite.
type CatalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Upsert crea o reemplaza un artículo.
func (r *CatalogRepo) Upsert(ctx context.Context, it entity.Item) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO items (id, name, category, unit, minimum_threshold)
		VALUES (:id, :name, :category, :unit, :minimum_threshold)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, category = excluded.category,
			unit = excluded.unit, minimum_threshold = excluded.minimum_threshold`,
		itemRow{ID: it.ID, Name: it.Name, Category: it.Category, Unit: it.Unit, MinimumThreshold: it.MinimumThreshold})
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// GetItem devuelve (nil, nil) si no existe.
func (r *CatalogRepo) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, category, unit, minimum_threshold FROM items WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return row.toEntity(), nil
}

// ListItems artículos ordenados por ID.
func (r *CatalogRepo) ListItems(ctx context.Context) ([]*entity.Item, error) {
	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, category, unit, minimum_threshold FROM items ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	list := make([]*entity.Item, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}
