// Package recipe provides the application layer for the brew catalog.
// This implements the use cases defined in the inbound ports.
package recipe

import (
	"context"

	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/ports/inbound"
	"github.com/brewista/catalog/internal/ports/outbound"
	"github.com/brewista/catalog/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the recipe read use cases
type Service struct {
	recipes  outbound.RecipeRepository
	baristas outbound.BaristaRepository
	resolver *lookupResolver
	logger   *zap.Logger
}

// NewService creates a new recipe service
func NewService(
	recipes outbound.RecipeRepository,
	equipment outbound.EquipmentRepository,
	tags outbound.TagRepository,
	baristas outbound.BaristaRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.RecipeService {
	return &Service{
		recipes:  recipes,
		baristas: baristas,
		resolver: newLookupResolver(equipment, tags, cache, logger),
		logger:   logger.Named("recipe-service"),
	}
}

// SearchRecipes returns a page of published recipes matching the query
func (s *Service) SearchRecipes(ctx context.Context, query inbound.SearchRecipesQuery) (*inbound.SearchResult, error) {
	if err := validateSearchQuery(query); err != nil {
		return nil, err
	}

	criteria := toCriteria(query)

	// Storage failures propagate untouched so the boundary sees the
	// original cause.
	recipes, total, err := s.recipes.FindPublished(ctx, criteria)
	if err != nil {
		return nil, err
	}

	summaries, err := s.buildSummaries(ctx, recipes)
	if err != nil {
		return nil, err
	}

	return &inbound.SearchResult{
		Recipes: summaries,
		Pagination: inbound.Pagination{
			CurrentPage:  criteria.Page,
			TotalPages:   totalPages(total, criteria.Limit),
			TotalItems:   total,
			ItemsPerPage: criteria.Limit,
		},
	}, nil
}

// GetRecipeDetail resolves a raw id into the detail view and the next
// view-count value. Reading and the persisted counter update are decoupled:
// a failed increment is logged and dropped, never surfaced to the caller.
func (s *Service) GetRecipeDetail(ctx context.Context, rawID string) (*inbound.RecipeDetailResult, error) {
	id, err := recipe.ParseID(rawID)
	if err != nil {
		return nil, errors.NewInvalidIdentifierError().WithCause(err)
	}

	entity, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError()
	}
	if !entity.IsPublished() {
		return nil, errors.NewRecipeNotPublishedError()
	}

	detail, err := s.buildDetail(ctx, entity)
	if err != nil {
		return nil, err
	}

	newViewCount := entity.ViewCount() + 1

	if err := s.recipes.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("view count increment dropped",
			zap.String("recipe_id", id.String()),
			zap.Error(err),
		)
	}

	return &inbound.RecipeDetailResult{
		Recipe:       detail,
		NewViewCount: newViewCount,
	}, nil
}

// validateSearchQuery is fail-fast: the first violated rule wins
func validateSearchQuery(q inbound.SearchRecipesQuery) error {
	if q.Page < 1 {
		return errors.NewInvalidParametersError("page", "page must be >= 1")
	}
	if q.Limit < 1 || q.Limit > 100 {
		return errors.NewInvalidParametersError("limit", "limit must be between 1 and 100")
	}
	ranges := []struct {
		name string
		r    *inbound.RangeFilter
	}{
		{"beanWeight", q.BeanWeight},
		{"waterTemp", q.WaterTemp},
		{"waterAmount", q.WaterAmount},
	}
	for _, f := range ranges {
		if f.r == nil {
			continue
		}
		if f.r.Min != nil && *f.r.Min < 0 {
			return errors.NewInvalidParametersError(f.name, f.name+".min must be >= 0")
		}
		if f.r.Max != nil && *f.r.Max < 0 {
			return errors.NewInvalidParametersError(f.name, f.name+".max must be >= 0")
		}
		if f.r.Min != nil && f.r.Max != nil && *f.r.Min > *f.r.Max {
			return errors.NewInvalidParametersError(f.name, f.name+".min must not exceed "+f.name+".max")
		}
	}
	return nil
}

// toCriteria maps the inbound query to repository criteria. Pass-through
// with field renaming only; the repository owns the filter semantics.
func toCriteria(q inbound.SearchRecipesQuery) outbound.SearchCriteria {
	c := outbound.SearchCriteria{
		Page:           q.Page,
		Limit:          q.Limit,
		Query:          q.Search,
		EquipmentNames: q.Equipment,
		EquipmentTypes: q.EquipmentTypes,
		BeanWeight:     toRange(q.BeanWeight),
		WaterTemp:      toRange(q.WaterTemp),
		WaterAmount:    toRange(q.WaterAmount),
		SortBy:         outbound.SortField(q.SortBy),
		SortOrder:      outbound.SortOrder(q.SortOrder),
	}
	for _, r := range q.RoastLevels {
		c.RoastLevels = append(c.RoastLevels, recipe.RoastLevel(r))
	}
	for _, g := range q.GrindSizes {
		c.GrindSizes = append(c.GrindSizes, recipe.GrindSize(g))
	}
	return c
}

func toRange(f *inbound.RangeFilter) *outbound.Range {
	if f == nil {
		return nil
	}
	return &outbound.Range{Min: f.Min, Max: f.Max}
}

func totalPages(totalItems, limit int) int {
	if totalItems == 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}
