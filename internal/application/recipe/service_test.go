package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/infrastructure/persistence/memory"
	"github.com/brewista/catalog/internal/ports/inbound"
	"github.com/brewista/catalog/pkg/errors"
	"github.com/brewista/catalog/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptrF(v float64) *float64 { return &v }

func newTestService(store *memory.Store) inbound.RecipeService {
	return NewService(
		memory.NewRecipeRepository(store),
		memory.NewEquipmentRepository(store),
		memory.NewTagRepository(store),
		memory.NewBaristaRepository(store),
		memory.NewCacheRepository(),
		zap.NewNop(),
	)
}

func catalogStore() *memory.Store {
	store := memory.NewStore()

	store.PutEquipment(testutils.NewEquipment(1, "V60", "Hario", "dripper"))
	store.PutEquipment(testutils.NewEquipment(2, "C40", "Comandante", "grinder"))
	store.PutTag(testutils.NewTag(10, "Fruity", "fruity"))
	store.PutBarista(testutils.NewBarista(100, "Mika Tanaka"))

	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithTitle("Ethiopian Pour Over").
		WithEquipment(1, 2).
		WithTags(10).
		WithBarista(100).
		WithViewCount(500).
		WithCreatedAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Params())
	store.PutRecipe(testutils.NewRecipeBuilder(2).
		WithTitle("House Blend Chemex").
		WithCreatedAt(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
		Params())
	store.PutRecipe(testutils.NewRecipeBuilder(3).
		WithTitle("Kenyan Flash Brew").
		WithCreatedAt(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
		Params())
	store.PutRecipe(testutils.NewRecipeBuilder(4).
		WithTitle("Unreleased Draft").
		Unpublished().
		Params())

	return store
}

func TestSearchRecipesValidation(t *testing.T) {
	svc := newTestService(catalogStore())
	ctx := context.Background()

	valid := func() inbound.SearchRecipesQuery {
		return inbound.SearchRecipesQuery{Page: 1, Limit: 20}
	}

	t.Run("page boundaries", func(t *testing.T) {
		for _, page := range []int{0, -1} {
			q := valid()
			q.Page = page
			_, err := svc.SearchRecipes(ctx, q)
			assert.Equal(t, errors.CodeInvalidParameters, errors.GetCode(err), "page %d", page)
		}

		q := valid()
		q.Page = 1
		_, err := svc.SearchRecipes(ctx, q)
		assert.NoError(t, err)
	})

	t.Run("limit boundaries", func(t *testing.T) {
		for _, limit := range []int{0, -1, 101} {
			q := valid()
			q.Limit = limit
			_, err := svc.SearchRecipes(ctx, q)
			assert.Equal(t, errors.CodeInvalidParameters, errors.GetCode(err), "limit %d", limit)
		}

		for _, limit := range []int{1, 100} {
			q := valid()
			q.Limit = limit
			_, err := svc.SearchRecipes(ctx, q)
			assert.NoError(t, err, "limit %d", limit)
		}
	})

	t.Run("range rules", func(t *testing.T) {
		q := valid()
		q.BeanWeight = &inbound.RangeFilter{Min: ptrF(-1)}
		_, err := svc.SearchRecipes(ctx, q)
		assert.Equal(t, errors.CodeInvalidParameters, errors.GetCode(err))

		q = valid()
		q.WaterTemp = &inbound.RangeFilter{Max: ptrF(-0.5)}
		_, err = svc.SearchRecipes(ctx, q)
		assert.Equal(t, errors.CodeInvalidParameters, errors.GetCode(err))

		q = valid()
		q.WaterAmount = &inbound.RangeFilter{Min: ptrF(300), Max: ptrF(200)}
		_, err = svc.SearchRecipes(ctx, q)
		assert.Equal(t, errors.CodeInvalidParameters, errors.GetCode(err))

		q = valid()
		q.WaterAmount = &inbound.RangeFilter{Min: ptrF(200), Max: ptrF(200)}
		_, err = svc.SearchRecipes(ctx, q)
		assert.NoError(t, err, "equal bounds form a valid closed interval")
	})
}

func TestSearchRecipesPublishedOnly(t *testing.T) {
	svc := newTestService(catalogStore())

	result, err := svc.SearchRecipes(context.Background(), inbound.SearchRecipesQuery{
		Page: 1, Limit: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Pagination.TotalItems, "the draft stays invisible")
	assert.Len(t, result.Recipes, 3)
	for _, r := range result.Recipes {
		assert.NotEqual(t, "Unreleased Draft", r.Title)
	}
}

func TestSearchRecipesPagination(t *testing.T) {
	svc := newTestService(catalogStore())
	ctx := context.Background()

	t.Run("totals are derived from all matches", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Pagination.CurrentPage)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.Equal(t, 3, result.Pagination.TotalItems)
		assert.Equal(t, 2, result.Pagination.ItemsPerPage)
		assert.Len(t, result.Recipes, 2)
	})

	t.Run("page past the end keeps true totals", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{Page: 7, Limit: 2})
		require.NoError(t, err)
		assert.Empty(t, result.Recipes)
		assert.Equal(t, 7, result.Pagination.CurrentPage)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.Equal(t, 3, result.Pagination.TotalItems)
	})

	t.Run("no matches yields zero pages", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Page: 1, Limit: 20, Search: "nothing matches this",
		})
		require.NoError(t, err)
		assert.Empty(t, result.Recipes)
		assert.Equal(t, 0, result.Pagination.TotalPages)
		assert.Equal(t, 0, result.Pagination.TotalItems)
	})
}

func TestSearchRecipesEnrichment(t *testing.T) {
	svc := newTestService(catalogStore())

	result, err := svc.SearchRecipes(context.Background(), inbound.SearchRecipesQuery{
		Page: 1, Limit: 20, Search: "Ethiopian",
	})
	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)

	row := result.Recipes[0]
	assert.Equal(t, "1", row.ID)
	assert.Equal(t, []string{"Hario V60", "Comandante C40"}, row.Equipment)
	require.Len(t, row.Tags, 1)
	assert.Equal(t, "Fruity", row.Tags[0].Name)
	assert.Equal(t, "fruity", row.Tags[0].Slug)
	assert.Equal(t, "Mika Tanaka", row.BaristaName)
}

func TestSearchRecipesEnrichmentFallbacks(t *testing.T) {
	store := memory.NewStore()
	// References point at records the store never had
	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithTitle("Ghost References").
		WithEquipment(77).
		WithTags(88).
		WithBarista(99).
		Params())
	svc := newTestService(store)

	result, err := svc.SearchRecipes(context.Background(), inbound.SearchRecipesQuery{
		Page: 1, Limit: 20,
	})
	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)

	row := result.Recipes[0]
	assert.Equal(t, []string{"77"}, row.Equipment, "unresolvable equipment keeps the raw id")
	require.Len(t, row.Tags, 1)
	assert.Equal(t, inbound.TagDTO{ID: "88", Name: "88", Slug: "88"}, row.Tags[0])
	assert.Empty(t, row.BaristaName, "unresolvable barista is omitted")
}

func TestGetRecipeDetailErrors(t *testing.T) {
	svc := newTestService(catalogStore())
	ctx := context.Background()

	t.Run("malformed ids", func(t *testing.T) {
		for _, raw := range []string{"", "0", "-1", "abc", "1.5", "01"} {
			_, err := svc.GetRecipeDetail(ctx, raw)
			assert.Equal(t, errors.CodeInvalidIdentifier, errors.GetCode(err), "input %q", raw)
		}
	})

	t.Run("missing recipe", func(t *testing.T) {
		_, err := svc.GetRecipeDetail(ctx, "999")
		assert.Equal(t, errors.CodeRecipeNotFound, errors.GetCode(err))
	})

	t.Run("unpublished recipe", func(t *testing.T) {
		_, err := svc.GetRecipeDetail(ctx, "4")
		assert.Equal(t, errors.CodeRecipeNotPublished, errors.GetCode(err))
	})
}

func TestGetRecipeDetail(t *testing.T) {
	store := catalogStore()
	svc := newTestService(store)
	ctx := context.Background()

	result, err := svc.GetRecipeDetail(ctx, "1")
	require.NoError(t, err)

	detail := result.Recipe
	assert.Equal(t, "1", detail.ID)
	assert.Equal(t, "Ethiopian Pour Over", detail.Title)
	assert.Equal(t, 500, detail.ViewCount, "body keeps the count as read")
	assert.Equal(t, 501, result.NewViewCount)
	assert.True(t, detail.IsPublished)
	require.NotNil(t, detail.Barista)
	assert.Equal(t, "Mika Tanaka", detail.Barista.Name)
	assert.Len(t, detail.Barista.SocialLinks, 1)
	require.Len(t, detail.Equipment, 2)
	assert.Equal(t, "V60", detail.Equipment[0].Name)
	require.NotNil(t, detail.Equipment[0].EquipmentType)
	assert.Equal(t, "dripper", detail.Equipment[0].EquipmentType.Name)

	// The increment persisted, so the next read sees it
	again, err := svc.GetRecipeDetail(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 501, again.Recipe.ViewCount)
	assert.Equal(t, 502, again.NewViewCount)
}

func TestGetRecipeDetailDropsUnresolvableReferences(t *testing.T) {
	store := memory.NewStore()
	store.PutEquipment(testutils.NewEquipment(1, "V60", "Hario", "dripper"))
	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithEquipment(1, 55).
		WithTags(66).
		WithBarista(77).
		Params())
	svc := newTestService(store)

	result, err := svc.GetRecipeDetail(context.Background(), "1")
	require.NoError(t, err)

	detail := result.Recipe
	require.Len(t, detail.Equipment, 1, "stale equipment reference is dropped")
	assert.Equal(t, "V60", detail.Equipment[0].Name)
	assert.Empty(t, detail.Tags)
	assert.NotNil(t, detail.Tags, "empty, not null")
	assert.Nil(t, detail.Barista)
}

func TestGetRecipeDetailOptionalFields(t *testing.T) {
	store := memory.NewStore()
	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithConditions(recipe.BrewingConditionsParams{
			RoastLevel: recipe.RoastLight,
		}).
		Params())
	svc := newTestService(store)

	result, err := svc.GetRecipeDetail(context.Background(), "1")
	require.NoError(t, err)

	detail := result.Recipe
	assert.Equal(t, "light", detail.RoastLevel)
	assert.Nil(t, detail.GrindSize)
	assert.Nil(t, detail.BeanWeight)
	assert.Nil(t, detail.WaterTemp)
	assert.Nil(t, detail.WaterAmount)
	assert.Nil(t, detail.BrewingTime)
	assert.Nil(t, detail.Remarks)
}
