// ABOUTME: CLI command running the HTTP API server
// ABOUTME: Graceful shutdown on SIGINT/SIGTERM, eager embedding warmup
package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/creative-h/agentQ-Travel-Planner/internal/api"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server exposing the recommendation core.

Endpoints:
  POST /api/v1/recommendations
  GET  /api/v1/destinations
  GET  /api/v1/destinations/similar?name=<destination>
  GET  /healthz
  GET  /metrics`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, cat, cache, err := buildService()
	if err != nil {
		return err
	}

	server := api.NewServer(svc, cat, cfg.Server)
	logger := logging.Component("serve")

	// Absorb the one slow embedding batch before traffic arrives.
	go cache.Populate(cmd.Context())

	httpServer := &http.Server{
		Addr:              server.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
