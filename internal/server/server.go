package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/at-ishikawa/ogura-an/internal/errorlog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const shutdownTimeout = 10 * time.Second

type Config struct {
	Address       string
	AllowedOrigin string
}

// NewHTTPHandler wraps the API with CORS, panic recovery and h2c.
func NewHTTPHandler(handler *Handler, supervisor *errorlog.Supervisor, allowedOrigin string) http.Handler {
	return corsMiddleware(allowedOrigin,
		recoverMiddleware(supervisor,
			h2c.NewHandler(handler.Routes(), &http2.Server{})))
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Default().Info("starting server", "address", cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.ListenAndServe > %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Default().Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown > %w", err)
	}
	return nil
}
