// Package server exposes detour boards over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/detour-board/config"
	"github.com/theoremus-urban-solutions/detour-board/detours"
)

const shutdownTimeout = 10 * time.Second

// Boards hands out running boards by source set.
type Boards interface {
	Get(src config.Sources) (*detours.Board, error)
	Boards() []*detours.Board
}

// Server serves the HTML board, the JSON API and health output.
type Server struct {
	cfg      config.AppConfig
	boards   Boards
	defaults config.BoardQuery
	logger   zerolog.Logger
	now      func() time.Time
}

func New(cfg config.AppConfig, boards Boards, logger zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		boards:   boards,
		defaults: config.DefaultBoardQuery(cfg),
		logger:   logger.With().Str("component", "server").Logger(),
		now:      time.Now,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/", s.handleBoardHTML)
	r.Route("/api", func(r chi.Router) {
		r.Get("/messages.json", s.handleMessagesJSON)
		r.Get("/health", s.handleHealth)
	})
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.Server.ReadTimeout(),
		WriteTimeout:      s.cfg.Server.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("Server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info().Msg("Server shut down successfully")
	return nil
}
