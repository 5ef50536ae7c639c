// Package server exposes a read-only preview surface for a generated
// catalog so the asset pipeline can fetch it over HTTP during development.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

const (
	catalogCacheSize = 4
	catalogCacheTTL  = 30 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// Server serves a generated catalog file read-only.
type Server struct {
	httpServer  *http.Server
	catalogPath string
	cache       *catalogCache
}

// NewServer creates a new Server instance for the catalog at catalogPath.
func NewServer(port int, catalogPath string) *Server {
	s := &Server{
		catalogPath: catalogPath,
		cache:       newCatalogCache(catalogCacheSize, catalogCacheTTL),
	}

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/version", s.handleVersion)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
	})

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	slog.Info("preview server listening", "addr", s.httpServer.Addr, "catalog", s.catalogPath)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("preview server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"version": domain.DocumentVersion})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	data, err := s.cache.Load(s.catalogPath)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		http.Error(w, "catalog not available", http.StatusNotFound)
		return
	}

	metrics.CatalogServed.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// loggingMiddleware attaches a run ID to the request context and logs the
// request outcome. Health and metrics probes are skipped to keep logs quiet.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") || strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		runID := logger.GenerateRunID()
		ctx := logger.WithRunID(r.Context(), runID)
		log := logger.FromContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))

		log.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
