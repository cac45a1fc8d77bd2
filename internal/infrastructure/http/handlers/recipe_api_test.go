package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	recipeapp "github.com/brewista/catalog/internal/application/recipe"
	"github.com/brewista/catalog/internal/infrastructure/persistence/memory"
	"github.com/brewista/catalog/internal/ports/inbound"
	"github.com/brewista/catalog/pkg/errors"
	"github.com/brewista/catalog/test/testutils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(store *memory.Store) http.Handler {
	svc := recipeapp.NewService(
		memory.NewRecipeRepository(store),
		memory.NewEquipmentRepository(store),
		memory.NewTagRepository(store),
		memory.NewBaristaRepository(store),
		memory.NewCacheRepository(),
		zap.NewNop(),
	)
	h := NewRecipeHandlers(svc, nil, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/v1/recipes", func(r chi.Router) {
		r.Get("/", h.SearchRecipes)
		r.Get("/{id}", h.GetRecipe)
	})
	return r
}

func testStore() *memory.Store {
	store := memory.NewStore()
	store.PutEquipment(testutils.NewEquipment(1, "V60", "Hario", "dripper"))
	store.PutTag(testutils.NewTag(10, "Fruity", "fruity"))

	store.PutRecipe(testutils.NewRecipeBuilder(1).
		WithTitle("Ethiopian Pour Over").
		WithEquipment(1).
		WithTags(10).
		WithViewCount(500).
		Params())
	store.PutRecipe(testutils.NewRecipeBuilder(2).
		WithTitle("Unreleased Draft").
		Unpublished().
		Params())
	return store
}

func doRequest(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorResponse {
	t.Helper()
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSearchRecipesEndpoint(t *testing.T) {
	router := newTestRouter(testStore())

	rec := doRequest(t, router, "/api/v1/recipes?search=ethiopian")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result inbound.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Ethiopian Pour Over", result.Recipes[0].Title)
	assert.Equal(t, 1, result.Pagination.TotalItems)
	assert.Equal(t, 20, result.Pagination.ItemsPerPage, "default limit applies")
}

func TestSearchRecipesEndpointBadParams(t *testing.T) {
	router := newTestRouter(testStore())

	cases := map[string]string{
		"non-integer page":   "/api/v1/recipes?page=abc",
		"non-integer limit":  "/api/v1/recipes?limit=ten",
		"non-numeric range":  "/api/v1/recipes?beanWeightMin=heavy",
		"page below minimum": "/api/v1/recipes?page=0",
		"limit above cap":    "/api/v1/recipes?limit=101",
		"inverted range":     "/api/v1/recipes?waterTempMin=95&waterTempMax=90",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(t, router, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, errors.CodeInvalidParameters, resp.Error.Code)
		})
	}
}

func TestGetRecipeEndpoint(t *testing.T) {
	router := newTestRouter(testStore())

	rec := doRequest(t, router, "/api/v1/recipes/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "501", rec.Header().Get("X-New-View-Count"))

	var detail inbound.RecipeDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "1", detail.ID)
	assert.Equal(t, "Ethiopian Pour Over", detail.Title)
	assert.Equal(t, 500, detail.ViewCount)
}

func TestGetRecipeEndpointInvalidID(t *testing.T) {
	router := newTestRouter(testStore())

	for _, raw := range []string{"abc", "0", "-1", "1.5", "01"} {
		rec := doRequest(t, router, "/api/v1/recipes/"+raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", raw)
		resp := decodeError(t, rec)
		assert.Equal(t, errors.CodeInvalidIdentifier, resp.Error.Code)
		assert.Equal(t, "invalid id", resp.Error.Message, "raw input is never echoed")
	}
}

// An unpublished recipe and a missing one must be indistinguishable from
// the outside: same status, same code, same message.
func TestGetRecipeEndpointHidesUnpublished(t *testing.T) {
	router := newTestRouter(testStore())

	missing := doRequest(t, router, "/api/v1/recipes/999")
	unpublished := doRequest(t, router, "/api/v1/recipes/2")

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusNotFound, unpublished.Code)

	missingResp := decodeError(t, missing)
	unpublishedResp := decodeError(t, unpublished)

	// Normalize the only request-varying field
	missingResp.Error.Timestamp = ""
	unpublishedResp.Error.Timestamp = ""
	assert.Equal(t, missingResp, unpublishedResp)
	assert.Equal(t, errors.CodeRecipeNotFound, unpublishedResp.Error.Code)
}

func TestGetRecipeEndpointViewCountProgression(t *testing.T) {
	router := newTestRouter(testStore())

	first := doRequest(t, router, "/api/v1/recipes/1")
	second := doRequest(t, router, "/api/v1/recipes/1")

	assert.Equal(t, "501", first.Header().Get("X-New-View-Count"))
	assert.Equal(t, "502", second.Header().Get("X-New-View-Count"))
}
