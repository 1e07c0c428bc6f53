// Package api provides the read-only JSON API over a loaded search
// engine. All endpoints are pure reads; the engine is built before the
// server starts and never mutated, so handlers need no locking.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FocuswithJustin/RowanBible/core/search"
	"github.com/FocuswithJustin/RowanBible/internal/logging"
	"github.com/FocuswithJustin/RowanBible/internal/metrics"
)

// Config holds server configuration.
type Config struct {
	Port int
}

// Server serves the query API for one engine.
type Server struct {
	engine *search.Engine
	cfg    Config
}

// New builds a server over an already-loaded engine.
func New(engine *search.Engine, cfg Config) *Server {
	return &Server{engine: engine, cfg: cfg}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.RequestID)
	r.Use(logging.RequestLogger)
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/books", s.handleBooks)
		r.Get("/books/{id}", s.handleBook)
		r.Get("/verse/{id}/{chapter}/{verse}", s.handleVerse)
		r.Get("/search", s.handleSearch)
		r.Get("/reference", s.handleReference)
		r.Get("/random", s.handleRandom)
	})
	return r
}

// Start runs the HTTP server until it fails. It refuses to start on an
// unloaded engine: serving queries that can only answer not-found is a
// deployment mistake, not a valid state.
func (s *Server) Start() error {
	if !s.engine.Loaded() {
		return fmt.Errorf("refusing to serve: no corpus loaded")
	}

	logging.ServerStartup("http", s.cfg.Port,
		"verse_count", s.engine.VerseCount(),
		"books", len(s.engine.Books()))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return srv.ListenAndServe()
}
