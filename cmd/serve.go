package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/lighthouse-data/enricher/internal/config"
	"github.com/lighthouse-data/enricher/internal/handlers"
	"github.com/lighthouse-data/enricher/internal/tasks"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the enrichment HTTP service",
		Long: `Starts the enrichment API on the specified port.

The API enriches single product records synchronously and processes
uploaded product tables (CSV, XLSX or Parquet) as background tasks.`,
		Example: `  # Start server on default port 8080
  enricher serve

  # Start server on custom port
  enricher serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()

			enricher, err := buildEnricher(cfg)
			if err != nil {
				return err
			}

			store := tasks.NewStore(cfg.TaskRetention)
			defer store.Close()

			coordinator := tasks.NewCoordinator(enricher, store, cfg.MaxBatchSize, cfg.Concurrency, slog.Default())
			handler := handlers.New(enricher, coordinator, cfg.MaxRows)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/v1/enrich", handler.HandleEnrich)
			mux.HandleFunc("/api/v1/bulk-enrich", handler.HandleBulkEnrich)
			mux.HandleFunc("/api/v1/tasks/", handler.HandleTask)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Enrichment API available", "addr", addr, "provider", cfg.Provider)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")

	return cmd
}
