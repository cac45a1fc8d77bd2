package memory

import (
	"context"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/tag"
	"github.com/brewista/catalog/internal/ports/outbound"
)

// EquipmentRepository implements the equipment lookup over a Store
type EquipmentRepository struct {
	store *Store
}

// NewEquipmentRepository creates a new in-memory equipment repository
func NewEquipmentRepository(store *Store) outbound.EquipmentRepository {
	return &EquipmentRepository{store: store}
}

// FindByIDs resolves the given ids; misses are omitted
func (r *EquipmentRepository) FindByIDs(ctx context.Context, ids []int64) ([]equipment.Equipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found := make([]equipment.Equipment, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.store.equipment[id]; ok {
			found = append(found, e)
		}
	}
	return found, nil
}

// TagRepository implements the tag lookup over a Store
type TagRepository struct {
	store *Store
}

// NewTagRepository creates a new in-memory tag repository
func NewTagRepository(store *Store) outbound.TagRepository {
	return &TagRepository{store: store}
}

// FindByIDs resolves the given ids; misses are omitted
func (r *TagRepository) FindByIDs(ctx context.Context, ids []int64) ([]tag.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found := make([]tag.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.store.tags[id]; ok {
			found = append(found, t)
		}
	}
	return found, nil
}

// BaristaRepository implements the barista lookup over a Store
type BaristaRepository struct {
	store *Store
}

// NewBaristaRepository creates a new in-memory barista repository
func NewBaristaRepository(store *Store) outbound.BaristaRepository {
	return &BaristaRepository{store: store}
}

// FindByID resolves one barista; absent is (nil, nil)
func (r *BaristaRepository) FindByID(ctx context.Context, id int64) (*barista.Barista, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if b, ok := r.store.baristas[id]; ok {
		return &b, nil
	}
	return nil, nil
}

// FindByIDs resolves the given ids; misses are omitted
func (r *BaristaRepository) FindByIDs(ctx context.Context, ids []int64) ([]barista.Barista, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found := make([]barista.Barista, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.store.baristas[id]; ok {
			found = append(found, b)
		}
	}
	return found, nil
}
