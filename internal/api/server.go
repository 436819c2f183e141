package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"prlinks/internal/logging"
	"prlinks/internal/services"
)

// Server serves the HTTP API
type Server struct {
	httpServer *http.Server
}

// NewServer creates an API server listening on addr
func NewServer(addr string, service *services.PullRequestService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(NewHandlers(service)),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting HTTP API", "address", s.httpServer.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP API error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP API: %w", err)
	}

	logging.Logger.Info("HTTP API stopped")
	return nil
}
