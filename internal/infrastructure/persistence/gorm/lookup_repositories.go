package gorm

import (
	"context"
	"errors"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/tag"
	"github.com/brewista/catalog/internal/ports/outbound"
	"gorm.io/gorm"
)

// EquipmentRepository implements the equipment lookup using GORM
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new GORM-backed equipment repository
func NewEquipmentRepository(db *gorm.DB) outbound.EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// FindByIDs resolves the given ids in one query; misses are omitted
func (r *EquipmentRepository) FindByIDs(ctx context.Context, ids []int64) ([]equipment.Equipment, error) {
	if len(ids) == 0 {
		return []equipment.Equipment{}, nil
	}

	var models []EquipmentModel
	result := r.db.WithContext(ctx).
		Preload("Type").
		Where("id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	found := make([]equipment.Equipment, len(models))
	for i := range models {
		found[i] = ModelToEquipment(&models[i])
	}
	return found, nil
}

// TagRepository implements the tag lookup using GORM
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new GORM-backed tag repository
func NewTagRepository(db *gorm.DB) outbound.TagRepository {
	return &TagRepository{db: db}
}

// FindByIDs resolves the given ids in one query; misses are omitted
func (r *TagRepository) FindByIDs(ctx context.Context, ids []int64) ([]tag.Tag, error) {
	if len(ids) == 0 {
		return []tag.Tag{}, nil
	}

	var models []TagModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	found := make([]tag.Tag, len(models))
	for i := range models {
		found[i] = ModelToTag(&models[i])
	}
	return found, nil
}

// BaristaRepository implements the barista lookup using GORM
type BaristaRepository struct {
	db *gorm.DB
}

// NewBaristaRepository creates a new GORM-backed barista repository
func NewBaristaRepository(db *gorm.DB) outbound.BaristaRepository {
	return &BaristaRepository{db: db}
}

// FindByID resolves one barista with its social links; absent is (nil, nil)
func (r *BaristaRepository) FindByID(ctx context.Context, id int64) (*barista.Barista, error) {
	var model BaristaModel
	result := r.db.WithContext(ctx).
		Preload("SocialLinks").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	b := ModelToBarista(&model)
	return &b, nil
}

// FindByIDs resolves the given ids in one query; misses are omitted
func (r *BaristaRepository) FindByIDs(ctx context.Context, ids []int64) ([]barista.Barista, error) {
	if len(ids) == 0 {
		return []barista.Barista{}, nil
	}

	var models []BaristaModel
	result := r.db.WithContext(ctx).
		Preload("SocialLinks").
		Where("id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	found := make([]barista.Barista, len(models))
	for i := range models {
		found[i] = ModelToBarista(&models[i])
	}
	return found, nil
}
