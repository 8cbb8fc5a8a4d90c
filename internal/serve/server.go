// Package serve exposes a skill's reference tree over HTTP so local
// tools and assistants can browse the mirror without filesystem access.
package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/oil-oil/agent-skills/internal/hig"
)

// Config holds configuration for the reference server.
type Config struct {
	SkillDir string
	Host     string
	Port     int
	Logger   *slog.Logger
}

// Server serves a skill's references directory and catalog.
type Server struct {
	skillDir string
	host     string
	port     int
	logger   *slog.Logger
}

// NewServer creates a new reference server.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		skillDir: cfg.SkillDir,
		host:     cfg.Host,
		port:     cfg.Port,
		logger:   logger,
	}
}

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/catalog", s.handleCatalog)

	layout := hig.Layout{SkillDir: s.skillDir}
	fileServer := http.StripPrefix("/references", http.FileServer(http.Dir(layout.ReferencesDir())))
	r.Get("/references/*", fileServer.ServeHTTP)

	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(s.host, fmt.Sprintf("%d", s.port))
	s.logger.Info("starting reference server", "addr", fmt.Sprintf("http://%s", addr))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down reference server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	catalog, err := hig.LoadCatalog(s.skillDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "no catalog; run 'skillkit sync' first",
			})
			return
		}
		s.logger.Error("load catalog", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load catalog"})
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
