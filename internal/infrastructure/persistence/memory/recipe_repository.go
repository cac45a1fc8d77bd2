package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/ports/outbound"
)

// RecipeRepository implements the recipe repository interface over a Store
type RecipeRepository struct {
	store *Store
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository(store *Store) outbound.RecipeRepository {
	return &RecipeRepository{store: store}
}

// FindByID finds a recipe by ID; absent is (nil, nil)
func (r *RecipeRepository) FindByID(ctx context.Context, id recipe.ID) (*recipe.Recipe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.recipes[id.Int64()]
	if !ok {
		return nil, nil
	}
	return recipe.Reconstruct(*p), nil
}

// FindPublishedById would leak unpublished rows if it answered differently
// from a plain miss, so both cases collapse to (nil, nil).
func (r *RecipeRepository) FindPublishedByID(ctx context.Context, id recipe.ID) (*recipe.Recipe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.recipes[id.Int64()]
	if !ok || !p.IsPublished {
		return nil, nil
	}
	return recipe.Reconstruct(*p), nil
}

// Search applies the criteria's filters, sort and pagination
func (r *RecipeRepository) Search(ctx context.Context, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matches []*recipe.ReconstructParams
	for _, p := range r.store.recipes {
		if r.matches(p, criteria) {
			matches = append(matches, p)
		}
	}

	sortMatches(matches, criteria.SortBy, criteria.SortOrder)

	total := len(matches)

	if criteria.Limit > 0 {
		skip := (criteria.Page - 1) * criteria.Limit
		if skip < 0 {
			skip = 0
		}
		if skip >= len(matches) {
			matches = nil
		} else {
			end := skip + criteria.Limit
			if end > len(matches) {
				end = len(matches)
			}
			matches = matches[skip:end]
		}
	}

	recipes := make([]*recipe.Recipe, len(matches))
	for i, p := range matches {
		recipes[i] = recipe.Reconstruct(*p)
	}
	return recipes, total, nil
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
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.recipes[id.Int64()]
	return ok, nil
}

// FindByIDs batch-looks-up recipes; misses are silently omitted
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []recipe.ID) ([]*recipe.Recipe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	recipes := make([]*recipe.Recipe, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.recipes[id.Int64()]; ok {
			recipes = append(recipes, recipe.Reconstruct(*p))
		}
	}
	return recipes, nil
}

// Count applies Search's filter semantics without pagination
func (r *RecipeRepository) Count(ctx context.Context, criteria outbound.SearchCriteria) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, p := range r.store.recipes {
		if r.matches(p, criteria) {
			count++
		}
	}
	return count, nil
}

// IncrementViewCount bumps the counter under the store lock, the in-memory
// equivalent of the relational adapter's atomic UPDATE.
func (r *RecipeRepository) IncrementViewCount(ctx context.Context, id recipe.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.recipes[id.Int64()]
	if !ok {
		return recipe.ErrRecipeNotFound
	}
	p.ViewCount++
	return nil
}

// matches evaluates the full predicate: AND across dimensions, OR within one
func (r *RecipeRepository) matches(p *recipe.ReconstructParams, c outbound.SearchCriteria) bool {
	if c.Query != "" && !matchesQuery(p, c.Query) {
		return false
	}
	if len(c.RoastLevels) > 0 && !containsRoast(c.RoastLevels, p.Conditions.RoastLevel()) {
		return false
	}
	if len(c.GrindSizes) > 0 {
		g := p.Conditions.GrindSize()
		if g == nil || !containsGrind(c.GrindSizes, *g) {
			return false
		}
	}
	if !inRange(p.Conditions.BeanWeight(), c.BeanWeight) {
		return false
	}
	if !inRange(p.Conditions.WaterTemp(), c.WaterTemp) {
		return false
	}
	if !inRange(p.Conditions.WaterAmount(), c.WaterAmount) {
		return false
	}
	if len(c.EquipmentNames) > 0 && !r.ownsEquipmentNamed(p, c.EquipmentNames) {
		return false
	}
	if len(c.EquipmentTypes) > 0 && !r.ownsEquipmentTyped(p, c.EquipmentTypes) {
		return false
	}
	if len(c.TagIDs) > 0 && !ownsAny(p.TagIDs, c.TagIDs) {
		return false
	}
	if c.BaristaID != nil {
		if p.BaristaID == nil || *p.BaristaID != *c.BaristaID {
			return false
		}
	}
	if c.IsPublished != nil && p.IsPublished != *c.IsPublished {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match; any of the three
// text fields containing the term qualifies the recipe.
func matchesQuery(p *recipe.ReconstructParams, query string) bool {
	term := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if p.Summary != nil && strings.Contains(strings.ToLower(*p.Summary), term) {
		return true
	}
	if p.Remarks != nil && strings.Contains(strings.ToLower(*p.Remarks), term) {
		return true
	}
	return false
}

// inRange is a closed-interval check; an absent measurement fails any
// range filter on that field.
func inRange(value *float64, bounds *outbound.Range) bool {
	if bounds == nil {
		return true
	}
	if value == nil {
		return false
	}
	if bounds.Min != nil && *value < *bounds.Min {
		return false
	}
	if bounds.Max != nil && *value > *bounds.Max {
		return false
	}
	return true
}

func (r *RecipeRepository) ownsEquipmentNamed(p *recipe.ReconstructParams, names []string) bool {
	for _, id := range p.EquipmentIDs {
		e, ok := r.store.equipment[id]
		if !ok {
			continue
		}
		for _, name := range names {
			if strings.EqualFold(e.Name, name) {
				return true
			}
		}
	}
	return false
}

func (r *RecipeRepository) ownsEquipmentTyped(p *recipe.ReconstructParams, typeNames []string) bool {
	for _, id := range p.EquipmentIDs {
		e, ok := r.store.equipment[id]
		if !ok || e.Type == nil {
			continue
		}
		for _, name := range typeNames {
			if strings.EqualFold(e.Type.Name, name) {
				return true
			}
		}
	}
	return false
}

func ownsAny(owned, wanted []int64) bool {
	for _, o := range owned {
		for _, w := range wanted {
			if o == w {
				return true
			}
		}
	}
	return false
}

func containsRoast(set []recipe.RoastLevel, v recipe.RoastLevel) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsGrind(set []recipe.GrindSize, v recipe.GrindSize) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// sortMatches orders by the single requested field. A nil publishedAt sorts
// as the epoch. No secondary tie-break key is applied; equal keys keep
// their relative order.
func sortMatches(matches []*recipe.ReconstructParams, field outbound.SortField, order outbound.SortOrder) {
	if field == "" {
		field = outbound.SortByCreatedAt
	}
	if order == "" {
		order = outbound.SortDesc
	}

	less := func(a, b *recipe.ReconstructParams) bool {
		switch field {
		case outbound.SortByID:
			return a.ID.Int64() < b.ID.Int64()
		case outbound.SortByTitle:
			return a.Title < b.Title
		case outbound.SortByViewCount:
			return a.ViewCount < b.ViewCount
		case outbound.SortByUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		case outbound.SortByPublishedAt:
			return timeOrEpoch(a.PublishedAt).Before(timeOrEpoch(b.PublishedAt))
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if order == outbound.SortDesc {
			return less(matches[j], matches[i])
		}
		return less(matches[i], matches[j])
	})
}

func timeOrEpoch(t *time.Time) time.Time {
	if t == nil {
		return time.Unix(0, 0).UTC()
	}
	return *t
}
