package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/ports/outbound"
	"github.com/brewista/catalog/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrB(v bool) *bool       { return &v }

func seededStore() *Store {
	store := NewStore()

	store.PutEquipment(testutils.NewEquipment(1, "V60", "Hario", "dripper"))
	store.PutEquipment(testutils.NewEquipment(2, "Stagg EKG", "Fellow", "kettle"))
	store.PutTag(testutils.NewTag(10, "Fruity", "fruity"))
	store.PutTag(testutils.NewTag(11, "Classic", "classic"))

	grind := recipe.GrindMediumFine
	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithTitle("Ethiopian Pour Over").
		WithSummary("bright and tea-like").
		WithConditions(recipe.BrewingConditionsParams{
			RoastLevel: recipe.RoastLight,
			GrindSize:  &grind,
			BeanWeight: ptrF(15),
			WaterTemp:  ptrF(92),
		}).
		WithEquipment(1, 2).
		WithTags(10).
		WithCreatedAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Params())

	store.PutRecipe(testutils.NewRecipeBuilder(2).
		WithTitle("House Blend Chemex").
		WithSummary("an everyday classic").
		WithConditions(recipe.BrewingConditionsParams{
			RoastLevel: recipe.RoastMedium,
			BeanWeight: ptrF(30),
		}).
		WithTags(11).
		WithCreatedAt(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
		Params())

	store.PutRecipe(testutils.NewRecipeBuilder(3).
		WithTitle("Secret Draft").
		WithConditions(recipe.BrewingConditionsParams{
			RoastLevel: recipe.RoastItalian,
		}).
		Unpublished().
		WithCreatedAt(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
		Params())

	return store
}

func TestFindByID(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	found, err := repo.FindByID(ctx, recipe.IDFromInt64(1))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ethiopian Pour Over", found.Title())

	missing, err := repo.FindByID(ctx, recipe.IDFromInt64(99))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindPublishedByID(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	// Unpublished and absent must be indistinguishable
	draft, err := repo.FindPublishedByID(ctx, recipe.IDFromInt64(3))
	require.NoError(t, err)
	assert.Nil(t, draft)

	missing, err := repo.FindPublishedByID(ctx, recipe.IDFromInt64(99))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSearchTextQuery(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	recipes, total, err := repo.Search(ctx, outbound.SearchCriteria{
		Page: 1, Limit: 10, Query: "TEA-LIKE",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Ethiopian Pour Over", recipes[0].Title())
}

func TestSearchRoastLevelsORWithinDimension(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	_, total, err := repo.Search(ctx, outbound.SearchCriteria{
		Page: 1, Limit: 10,
		RoastLevels: []recipe.RoastLevel{recipe.RoastLight, recipe.RoastMedium},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSearchGrindAbsentFailsFilter(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	// Recipe 2 has no grind recorded, so only recipe 1 can match
	recipes, total, err := repo.Search(ctx, outbound.SearchCriteria{
		Page: 1, Limit: 10,
		GrindSizes: []recipe.GrindSize{recipe.GrindMediumFine, recipe.GrindCoarse},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Ethiopian Pour Over", recipes[0].Title())
}

func TestSearchRangeFilters(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	t.Run("closed interval", func(t *testing.T) {
		_, total, err := repo.Search(ctx, outbound.SearchCriteria{
			Page: 1, Limit: 10,
			BeanWeight: &outbound.Range{Min: ptrF(10), Max: ptrF(20)},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, total, err := repo.Search(ctx, outbound.SearchCriteria{
			Page: 1, Limit: 10,
			BeanWeight: &outbound.Range{Min: ptrF(15), Max: ptrF(30)},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("absent measurement fails the filter", func(t *testing.T) {
		// Only recipe 1 records water temperature
		_, total, err := repo.Search(ctx, outbound.SearchCriteria{
			Page: 1, Limit: 10,
			WaterTemp: &outbound.Range{Min: ptrF(0)},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})
}

func TestSearchEquipmentFilters(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	t.Run("by name, case-insensitive", func(t *testing.T) {
		recipes, total, err := repo.Search(ctx, outbound.SearchCriteria{
			Page: 1, Limit: 10,
			EquipmentNames: []string{"v60"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Ethiopian Pour Over", recipes[0].Title())
	})

	t.Run("by type", func(t *testing.T) {
		_, total, err := repo.Search(ctx, outbound.SearchCriteria{
			Page: 1, Limit: 10,
			EquipmentTypes: []string{"kettle"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("no match", func(t *testing.T) {
		_, total, err := repo.Search(ctx, outbound.SearchCriteria{
			Page: 1, Limit: 10,
			EquipmentNames: []string{"AeroPress"},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestSearchTagFilter(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	_, total, err := repo.Search(ctx, outbound.SearchCriteria{
		Page: 1, Limit: 10,
		TagIDs: []int64{10, 11},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSearchPagination(t *testing.T) {
	store := NewStore()
	for i := int64(1); i <= 5; i++ {
		store.PutRecipe(testutils.NewRecipeBuilder(i).
			WithCreatedAt(time.Date(2025, 1, int(i), 0, 0, 0, 0, time.UTC)).
			Params())
	}
	repo := NewRecipeRepository(store)
	ctx := context.Background()

	t.Run("pages carve the ordered set", func(t *testing.T) {
		page1, total, err := repo.Search(ctx, outbound.SearchCriteria{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, page1, 2)
		// Default order is newest first
		assert.Equal(t, "5", page1[0].ID().String())
		assert.Equal(t, "4", page1[1].ID().String())

		page3, total, err := repo.Search(ctx, outbound.SearchCriteria{Page: 3, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, page3, 1)
		assert.Equal(t, "1", page3[0].ID().String())
	})

	t.Run("page past the end keeps the true total", func(t *testing.T) {
		rows, total, err := repo.Search(ctx, outbound.SearchCriteria{Page: 9, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, rows)
	})
}

func TestSearchSortPublishedAtEpochForNil(t *testing.T) {
	store := NewStore()
	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithPublishedAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		Params())
	store.PutRecipe(testutils.NewRecipeBuilder(2).Unpublished().Params())
	repo := NewRecipeRepository(store)

	rows, _, err := repo.Search(context.Background(), outbound.SearchCriteria{
		Page: 1, Limit: 10,
		SortBy: outbound.SortByPublishedAt, SortOrder: outbound.SortAsc,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// The never-published row sorts as the epoch, so it comes first ascending
	assert.Equal(t, "2", rows[0].ID().String())
}

func TestFindPublishedForcesGate(t *testing.T) {
	repo := NewRecipeRepository(seededStore())

	published := false
	rows, total, err := repo.FindPublished(context.Background(), outbound.SearchCriteria{
		Page: 1, Limit: 10,
		IsPublished: &published, // overridden by the gate
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, r := range rows {
		assert.True(t, r.IsPublished())
	}
}

func TestSearchSortByViewCount(t *testing.T) {
	store := NewStore()
	store.PutRecipe(testutils.NewRecipeBuilder(1).WithViewCount(5).Params())
	store.PutRecipe(testutils.NewRecipeBuilder(2).WithViewCount(50).Params())
	repo := NewRecipeRepository(store)

	rows, _, err := repo.Search(context.Background(), outbound.SearchCriteria{
		Page: 1, Limit: 10,
		SortBy: outbound.SortByViewCount, SortOrder: outbound.SortDesc,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 50, rows[0].ViewCount())
}

func TestIncrementViewCount(t *testing.T) {
	store := NewStore()
	store.PutRecipe(testutils.NewRecipeBuilder(1).WithViewCount(0).Params())
	repo := NewRecipeRepository(store)
	ctx := context.Background()

	t.Run("missing recipe", func(t *testing.T) {
		err := repo.IncrementViewCount(ctx, recipe.IDFromInt64(99))
		assert.ErrorIs(t, err, recipe.ErrRecipeNotFound)
	})

	t.Run("concurrent increments are all counted", func(t *testing.T) {
		const workers = 50
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_ = repo.IncrementViewCount(ctx, recipe.IDFromInt64(1))
			}()
		}
		wg.Wait()

		found, err := repo.FindByID(ctx, recipe.IDFromInt64(1))
		require.NoError(t, err)
		assert.Equal(t, workers, found.ViewCount())
	})
}

func TestExistsAndCount(t *testing.T) {
	repo := NewRecipeRepository(seededStore())
	ctx := context.Background()

	ok, err := repo.Exists(ctx, recipe.IDFromInt64(3))
	require.NoError(t, err)
	assert.True(t, ok, "drafts still exist")

	ok, err = repo.Exists(ctx, recipe.IDFromInt64(99))
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := repo.Count(ctx, outbound.SearchCriteria{IsPublished: ptrB(true)})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
