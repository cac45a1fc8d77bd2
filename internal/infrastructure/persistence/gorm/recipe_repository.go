package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM-backed recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindByID finds a recipe by ID; absent is (nil, nil)
func (r *RecipeRepository) FindByID(ctx context.Context, id recipe.ID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Steps").
		Preload("Equipment").
		Preload("Tags").
		First(&model, "id = ?", id.Int64())

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model)
}

// FindPublishedByID finds a published recipe by ID. An unpublished row
// answers the same as a plain miss so nothing leaks about drafts.
func (r *RecipeRepository) FindPublishedByID(ctx context.Context, id recipe.ID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Steps").
		Preload("Equipment").
		Preload("Tags").
		Where("is_published = ?", true).
		First(&model, "id = ?", id.Int64())

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model)
}

// Search applies the criteria's filters, sort and pagination. The total
// counts every match, not just the returned page.
func (r *RecipeRepository) Search(ctx context.Context, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	var total int64
	countResult := applyFilter(r.db.WithContext(ctx).Model(&RecipeModel{}), criteria).Count(&total)
	if countResult.Error != nil {
		return nil, 0, countResult.Error
	}

	query := applyFilter(r.db.WithContext(ctx).Model(&RecipeModel{}), criteria)
	query = applySort(query, criteria.SortBy, criteria.SortOrder)
	if criteria.Limit > 0 {
		offset := (criteria.Page - 1) * criteria.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(criteria.Limit)
	}

	var models []RecipeModel
	result := query.
		Preload("Steps").
		Preload("Equipment").
		Preload("Tags").
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		rec, err := ModelToRecipe(&models[i])
		if err != nil {
			return nil, 0, err
		}
		recipes[i] = rec
	}
	return recipes, int(total), nil
}

// FindPublished is Search with the published gate forced on
func (r *RecipeRepository) FindPublished(ctx context.Context, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	published := true
	criteria.IsPublished = &published
	return r.Search(ctx, criteria)
}

// FindByBarista is Search scoped to one barista
func (r *RecipeRepository) FindByBarista(ctx context.Context, baristaID int64, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	criteria.BaristaID = &baristaID
	return r.Search(ctx, criteria)
}

// Exists checks whether a recipe row exists
func (r *RecipeRepository) Exists(ctx context.Context, id recipe.ID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ?", id.Int64()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindByIDs batch-looks-up recipes; misses are silently omitted
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []recipe.ID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return []*recipe.Recipe{}, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = id.Int64()
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Steps").
		Preload("Equipment").
		Preload("Tags").
		Where("id IN ?", raw).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		rec, err := ModelToRecipe(&models[i])
		if err != nil {
			return nil, err
		}
		recipes[i] = rec
	}
	return recipes, nil
}

// Count applies Search's filter semantics without pagination
func (r *RecipeRepository) Count(ctx context.Context, criteria outbound.SearchCriteria) (int, error) {
	var total int64
	result := applyFilter(r.db.WithContext(ctx).Model(&RecipeModel{}), criteria).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(total), nil
}

// IncrementViewCount bumps the counter in one atomic UPDATE. Reading the
// count, adding one and writing it back would drop increments under load.
func (r *RecipeRepository) IncrementViewCount(ctx context.Context, id recipe.ID) error {
	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ?", id.Int64()).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// applyFilter translates the criteria into SQL predicates: AND across
// dimensions, OR (IN) within one.
func applyFilter(db *gorm.DB, c outbound.SearchCriteria) *gorm.DB {
	if c.Query != "" {
		term := "%" + strings.ToLower(c.Query) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(summary) LIKE ? OR LOWER(remarks) LIKE ?",
			term, term, term,
		)
	}

	if len(c.RoastLevels) > 0 {
		levels := make([]string, len(c.RoastLevels))
		for i, l := range c.RoastLevels {
			levels[i] = string(l)
		}
		db = db.Where("roast_level IN ?", levels)
	}

	if len(c.GrindSizes) > 0 {
		// NULL grind_size never matches IN, which is the wanted
		// behavior: an unrecorded grind fails the filter
		sizes := make([]string, len(c.GrindSizes))
		for i, g := range c.GrindSizes {
			sizes[i] = string(g)
		}
		db = db.Where("grind_size IN ?", sizes)
	}

	db = applyRange(db, "bean_weight_grams", c.BeanWeight)
	db = applyRange(db, "water_temp_celsius", c.WaterTemp)
	db = applyRange(db, "water_amount_grams", c.WaterAmount)

	if len(c.EquipmentNames) > 0 {
		names := lowered(c.EquipmentNames)
		db = db.Where(
			"EXISTS (SELECT 1 FROM recipe_equipment re JOIN equipment e ON e.id = re.equipment_id "+
				"WHERE re.recipe_id = recipes.id AND LOWER(e.name) IN ?)",
			names,
		)
	}

	if len(c.EquipmentTypes) > 0 {
		types := lowered(c.EquipmentTypes)
		db = db.Where(
			"EXISTS (SELECT 1 FROM recipe_equipment re JOIN equipment e ON e.id = re.equipment_id "+
				"JOIN equipment_types et ON et.id = e.equipment_type_id "+
				"WHERE re.recipe_id = recipes.id AND LOWER(et.name) IN ?)",
			types,
		)
	}

	if len(c.TagIDs) > 0 {
		db = db.Where(
			"EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = recipes.id AND rt.tag_id IN ?)",
			c.TagIDs,
		)
	}

	if c.BaristaID != nil {
		db = db.Where("barista_id = ?", *c.BaristaID)
	}

	if c.IsPublished != nil {
		db = db.Where("is_published = ?", *c.IsPublished)
	}

	return db
}

// applyRange adds closed-interval bounds on one column. The filter demands
// a recorded value, so a NULL column is excluded whenever bounds exist.
func applyRange(db *gorm.DB, column string, bounds *outbound.Range) *gorm.DB {
	if bounds == nil {
		return db
	}
	db = db.Where(column + " IS NOT NULL")
	if bounds.Min != nil {
		db = db.Where(column+" >= ?", *bounds.Min)
	}
	if bounds.Max != nil {
		db = db.Where(column+" <= ?", *bounds.Max)
	}
	return db
}

// applySort orders by the single requested field, newest-first creation
// order by default. Unpublished rows sort as the epoch under publishedAt.
func applySort(db *gorm.DB, field outbound.SortField, order outbound.SortOrder) *gorm.DB {
	direction := "DESC"
	if order == outbound.SortAsc {
		direction = "ASC"
	}

	column := ""
	switch field {
	case outbound.SortByID:
		column = "id"
	case outbound.SortByTitle:
		column = "title"
	case outbound.SortByViewCount:
		column = "view_count"
	case outbound.SortByUpdatedAt:
		column = "updated_at"
	case outbound.SortByPublishedAt:
		column = "COALESCE(published_at, '1970-01-01 00:00:00')"
	default:
		column = "created_at"
	}

	return db.Order(column + " " + direction)
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
