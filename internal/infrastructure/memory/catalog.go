package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository"
)

var (
	_ repository.CatalogRepository = (*Catalog)(nil)
	_ repository.SubjectRepository = (*Subjects)(nil)
)

// Catalog catálogo de artículos en memoria.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]entity.Item
}

// NewCatalog crea el catálogo con los artículos dados.
func NewCatalog(items ...entity.Item) *Catalog {
	c := &Catalog{items: make(map[string]entity.Item, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// Put crea o reemplaza un artículo.
func (c *Catalog) Put(it entity.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[it.ID] = it
}

// GetItem devuelve (nil, nil) si no existe.
func (c *Catalog) GetItem(_ context.Context, id string) (*entity.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// ListItems artículos ordenados por ID.
func (c *Catalog) ListItems(_ context.Context) ([]*entity.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := make([]*entity.Item, 0, len(c.items))
	for _, it := range c.items {
		it := it
		list = append(list, &it)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Subjects registro de residentes en memoria.
type Subjects struct {
	mu       sync.RWMutex
	subjects map[string]entity.Subject
}

// NewSubjects crea el registro.
func NewSubjects(subjects ...entity.Subject) *Subjects {
	s := &Subjects{subjects: make(map[string]entity.Subject, len(subjects))}
	for _, sub := range subjects {
		s.subjects[sub.ID] = sub
	}
	return s
}

// Put crea o reemplaza un residente.
func (s *Subjects) Put(sub entity.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects[sub.ID] = sub
}

// GetSubject devuelve (nil, nil) si no existe.
func (s *Subjects) GetSubject(_ context.Context, id string) (*entity.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subjects[id]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}
