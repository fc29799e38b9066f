// Package web wires the HTTP router, middleware and server lifecycle.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/asionix/mailroom/internal/web/handlers"
)

// Config holds server configuration.
type Config struct {
	Port int

	// AllowedOrigins is the CORS allow-list; empty means allow all.
	AllowedOrigins []string
}

// Server represents the HTTP server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     *Config
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(cfg *Config, career *handlers.CareerHandler, contact *handlers.ContactHandler) *Server {
	router := chi.NewRouter()

	// middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  allowOrigin(cfg.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// health check
	router.Get("/health", handlers.Health)

	// form endpoints
	router.Route("/api", func(r chi.Router) {
		r.Post("/career", career.Submit)
		r.Post("/contact", contact.Submit)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// allowOrigin builds the origin check: requests without an Origin header
// never reach this func, a literal "null" origin (file:// callers) is always
// allowed, and an empty allow-list allows everything.
func allowOrigin(allowed []string) func(r *http.Request, origin string) bool {
	return func(r *http.Request, origin string) bool {
		if origin == "null" {
			return true
		}
		if len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

// Router returns the underlying chi router, mainly for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
