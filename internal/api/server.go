// Package api exposes the render engine over HTTP. The server accepts
// circuit JSON, renders it through the same sink pipeline the CLI uses,
// caches artifacts by content hash, and persists results so they can be
// fetched again by ID.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qdrawlabs/qdraw/pkg/cache"
	"github.com/qdrawlabs/qdraw/pkg/storage"
)

// Server bundles the router with its cache and store backends.
type Server struct {
	router *chi.Mux
	cache  cache.Cache
	store  storage.Store
	logger *log.Logger

	// artifactTTL bounds how long cached renders live.
	artifactTTL time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the artifact cache backend. Defaults to NullCache.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithStore sets the diagram persistence backend. Defaults to an
// in-memory store.
func WithStore(st storage.Store) Option {
	return func(s *Server) { s.store = st }
}

// WithLogger sets the request logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithArtifactTTL sets the cache TTL for rendered artifacts.
func WithArtifactTTL(ttl time.Duration) Option {
	return func(s *Server) { s.artifactTTL = ttl }
}

// NewServer builds the HTTP handler with all routes registered.
func NewServer(opts ...Option) *Server {
	s := &Server{
		cache:       cache.NewNullCache(),
		store:       storage.NewMemoryStore(),
		logger:      log.Default(),
		artifactTTL: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/diagrams", s.handleListDiagrams)
		r.Get("/diagrams/{id}", s.handleGetDiagram)
		r.Delete("/diagrams/{id}", s.handleDeleteDiagram)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
