// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brewista/catalog/internal/infrastructure/monitoring"
	"github.com/brewista/catalog/internal/ports/inbound"
	"github.com/brewista/catalog/pkg/errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RecipeHandlers handles the recipe catalog's REST endpoints
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	metrics       *monitoring.MetricsCollector
	logger        *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance. The metrics
// collector may be nil; counting is then skipped.
func NewRecipeHandlers(
	recipeService inbound.RecipeService,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		metrics:       metrics,
		logger:        logger.Named("recipe-api"),
	}
}

// SearchRecipes handles GET /api/v1/recipes
func (h *RecipeHandlers) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.recipeService.SearchRecipes(r.Context(), *query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordSearch()
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	result, err := h.recipeService.GetRecipeDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordRecipeView()
	}

	// The bumped counter travels out of band; the body keeps the value
	// that was current when the recipe was read.
	w.Header().Set("X-New-View-Count", strconv.Itoa(result.NewViewCount))
	h.writeJSON(w, http.StatusOK, result.Recipe)
}

// parseSearchQuery maps the raw query string onto the service's input.
// Only syntax is checked here; semantic validation is the service's job.
func parseSearchQuery(r *http.Request) (*inbound.SearchRecipesQuery, error) {
	params := r.URL.Query()

	query := &inbound.SearchRecipesQuery{
		Page:           1,
		Limit:          20,
		Search:         params.Get("search"),
		RoastLevels:    params["roastLevel"],
		GrindSizes:     params["grindSize"],
		Equipment:      params["equipment"],
		EquipmentTypes: params["equipmentType"],
		SortBy:         params.Get("sort"),
		SortOrder:      params.Get("order"),
	}

	if raw := params.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.NewInvalidParametersError("page", "must be an integer")
		}
		query.Page = page
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.NewInvalidParametersError("limit", "must be an integer")
		}
		query.Limit = limit
	}

	var err error
	if query.BeanWeight, err = parseRange(params, "beanWeightMin", "beanWeightMax"); err != nil {
		return nil, err
	}
	if query.WaterTemp, err = parseRange(params, "waterTempMin", "waterTempMax"); err != nil {
		return nil, err
	}
	if query.WaterAmount, err = parseRange(params, "waterAmountMin", "waterAmountMax"); err != nil {
		return nil, err
	}

	return query, nil
}

func parseRange(params map[string][]string, minKey, maxKey string) (*inbound.RangeFilter, error) {
	bounds := &inbound.RangeFilter{}
	present := false

	if raw := first(params, minKey); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewInvalidParametersError(minKey, "must be a number")
		}
		bounds.Min = &v
		present = true
	}
	if raw := first(params, maxKey); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewInvalidParametersError(maxKey, "must be a number")
		}
		bounds.Max = &v
		present = true
	}

	if !present {
		return nil, nil
	}
	return bounds, nil
}

func first(params map[string][]string, key string) string {
	if values := params[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func (h *RecipeHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError renders the error envelope. An unpublished recipe is rewritten
// to the not-found presentation here so the two cases are outwardly
// indistinguishable while logs keep the real cause.
func (h *RecipeHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		h.logger.Error("unclassified error", zap.Error(err))
		appErr = errors.NewInternalError()
	}

	if appErr.Code == errors.CodeRecipeNotPublished {
		h.logger.Info("unpublished recipe requested",
			zap.String("path", r.URL.Path),
		)
		appErr = errors.NewRecipeNotFoundError()
	}

	if appErr.Code == errors.CodeInternal {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	requestID := chimiddleware.GetReqID(r.Context())
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
