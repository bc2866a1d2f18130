package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"codeberg.org/swarmworks/server/internal/logger"
)

const (
	readTimeout     = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second

	// headroom on top of the slowest backend call before the write deadline hits
	writeHeadroom = 15 * time.Second
)

// builds an http.Server whose write deadline outlives a backend call of backendTimeout
func New(port string, handler http.Handler, backendTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: backendTimeout + writeHeadroom,
		IdleTimeout:  idleTimeout,
	}
}

// serves until ctx is done, then shuts down gracefully
func Serve(ctx context.Context, srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	return ServeListener(ctx, srv, ln)
}

// like Serve on an existing listener
func ServeListener(ctx context.Context, srv *http.Server, ln net.Listener) error {
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server listening", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server failed: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		return nil
	}
}
