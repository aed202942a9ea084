package repository

//go:generate mockgen -source=catalog_repository.go -destination=mocks/catalog_mocks.go -package=mocks

import (
	"context"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// CatalogRepository consulta del catálogo de artículos (gestionado fuera del núcleo).
// GetItem devuelve (nil, nil) si el artículo no existe.
type CatalogRepository interface {
	GetItem(ctx context.Context, id string) (*entity.Item, error)
	ListItems(ctx context.Context) ([]*entity.Item, error)
}

// SubjectRepository registro de sujetos; solo para mensajes legibles.
// GetSubject devuelve (nil, nil) si no existe.
type SubjectRepository interface {
	GetSubject(ctx context.Context, id string) (*entity.Subject, error)
}
