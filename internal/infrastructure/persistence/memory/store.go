// Package memory provides in-memory repository implementations. They mirror
// the relational adapter's filter, sort and pagination semantics exactly and
// back the application and handler tests.
package memory

import (
	"sync"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/domain/tag"
)

// Store is the shared backing state for the in-memory repositories.
// Recipes are kept as reconstruction params so reads hand out fresh
// aggregates and the view counter can be bumped under the store lock.
type Store struct {
	mu        sync.RWMutex
	recipes   map[int64]*recipe.ReconstructParams
	equipment map[int64]equipment.Equipment
	tags      map[int64]tag.Tag
	baristas  map[int64]barista.Barista
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		recipes:   make(map[int64]*recipe.ReconstructParams),
		equipment: make(map[int64]equipment.Equipment),
		tags:      make(map[int64]tag.Tag),
		baristas:  make(map[int64]barista.Barista),
	}
}

// PutRecipe inserts or replaces a recipe
func (s *Store) PutRecipe(p recipe.ReconstructParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.recipes[p.ID.Int64()] = &cp
}

// PutEquipment inserts or replaces an equipment record
func (s *Store) PutEquipment(e equipment.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment[e.ID] = e
}

// PutTag inserts or replaces a tag record
func (s *Store) PutTag(t tag.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags[t.ID] = t
}

// PutBarista inserts or replaces a barista record
func (s *Store) PutBarista(b barista.Barista) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baristas[b.ID] = b
}
