package inventory

import (
	"context"
	"slices"
	"sync"

	"github.com/go-faster/errors"
)

type MemStore struct {
	mu       sync.RWMutex
	products []Product
}

func NewMemStore(seed ...Product) *MemStore {
	s := &MemStore{products: make([]Product, 0, len(seed))}
	for _, p := range seed {
		s.products = append(s.products, p.Clone())
	}
	return s
}

// NewStore returns a memory store holding SeedProducts.
func NewStore() Store {
	return NewMemStore(SeedProducts()...)
}

func (s *MemStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Create appends p without checking id uniqueness.
func (s *MemStore) Create(ctx context.Context, p Product) (Product, error) {
	if !p.Valid() {
		return nil, errors.Wrap(ErrInvalidProduct, "create")
	}

	stored := p.Clone()

	s.mu.Lock()
	s.products = append(s.products, stored)
	s.mu.Unlock()

	return stored.Clone(), nil
}

func (s *MemStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}
	return s.products[i].Clone(), true, nil
}

func (s *MemStore) Update(ctx context.Context, id int64, patch Product) (Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}

	s.products[i].applyPatch(patch)
	return s.products[i].Clone(), true, nil
}

func (s *MemStore) Delete(ctx context.Context, id int64) (Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}

	removed := s.products[i]
	s.products = slices.Delete(s.products, i, i+1)
	return removed, true, nil
}

func (s *MemStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), nil
}

// indexOf returns the position of the first product with id, or -1.
// Callers hold s.mu.
func (s *MemStore) indexOf(id int64) int {
	return slices.IndexFunc(s.products, func(p Product) bool { return p.HasID(id) })
}
