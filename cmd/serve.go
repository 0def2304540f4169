package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/indicdlp/snipview/internal/config"
	"github.com/indicdlp/snipview/internal/handlers"
	"github.com/spf13/cobra"
)

// loadConfig resolves the shared --config/--root flags into a validated
// configuration.
func loadConfig(cfgPath, rootOverride string) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if rootOverride != "" {
		cfg.Root = rootOverride
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var cfgPath string
	var root string
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local snippet viewer web interface",
		Long: `Starts the snippet viewer on the specified port.

The web interface lists languages and regions found under the catalog
root and shows each sample image next to its parsed annotation text.`,
		Example: `  # Serve the default ./vis-samples catalog on port 8888
  snipview serve

  # Serve a different catalog on a custom port
  snipview serve --root /data/vis-samples --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, root)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			handler := handlers.New(cfg)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/languages", handler.HandleLanguages)
			mux.HandleFunc("/api/regions", handler.HandleRegions)
			mux.HandleFunc("/api/samples", handler.HandleSamples)
			mux.HandleFunc("/api/annotations", handler.HandleAnnotations)
			mux.HandleFunc("/api/image", handler.HandleImage)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Snippet viewer available", "addr", addr, "root", cfg.Root, "url", "http://localhost"+addr)
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

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default snipview.yaml if present)")
	cmd.Flags().StringVar(&root, "root", "", "Catalog root directory (overrides config)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")

	return cmd
}
