// Package apiserver provides the catalog's JSON API HTTP server
package apiserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brewista/catalog/internal/infrastructure/config"
	"github.com/brewista/catalog/internal/infrastructure/http/handlers"
	"github.com/brewista/catalog/internal/infrastructure/http/middleware"
	"github.com/brewista/catalog/internal/infrastructure/monitoring"
	"github.com/brewista/catalog/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// APIServer serves the recipe catalog's JSON API
type APIServer struct {
	config        *config.Config
	logger        *zap.Logger
	server        *http.Server
	router        *chi.Mux
	recipeService inbound.RecipeService
	metrics       *monitoring.MetricsCollector
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	recipeService inbound.RecipeService,
	metrics *monitoring.MetricsCollector,
) *APIServer {
	server := &APIServer{
		config:        cfg,
		logger:        log.Named("api-server"),
		recipeService: recipeService,
		metrics:       metrics,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         cfg.Server.ListenAddr(),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// Router returns the configured router, used directly by handler tests
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Start begins listening. It blocks until the listener fails or Shutdown
// is called.
func (s *APIServer) Start() error {
	s.logger.Info("starting api server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down api server")
	return s.server.Shutdown(ctx)
}

func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	r.Get("/health", s.handleHealthCheck)
	if s.metrics != nil && s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	h := handlers.NewRecipeHandlers(s.recipeService, s.metrics, s.logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.SearchRecipes)
			r.Get("/{id}", h.GetRecipe)
		})
	})

	return r
}

func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": s.config.App.Name,
		"version": s.config.App.Version,
	})
}
