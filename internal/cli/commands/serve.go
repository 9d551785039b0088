package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port int
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve lint results over HTTP",
		Long: `Start a local HTTP server exposing lint results as JSON.

Endpoints:
  GET /api/results - run the linter and return the full result set
  GET /api/rules   - rule metadata with configured overrides applied

Each /api/results request runs a fresh lint pass, so editors and CI
integrations always see the current content state.`,
		Example: `  # Serve on the default port
  sitelint serve

  # Serve on a custom port
  sitelint serve --port 9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", 8765, "Port to listen on")
	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	logger := config.GetLogger(cmd.Context())

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/api/results", func(w http.ResponseWriter, req *http.Request) {
		run, err := runPipeline(cfg, logger, pipelineOptions{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, run)
	})

	r.Get("/api/rules", func(w http.ResponseWriter, req *http.Request) {
		defs, err := lint.BuildRegistry(cfg.Params(), cfg.Rules)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"rules": lint.Metadata(defs)})
	})

	addr := fmt.Sprintf("127.0.0.1:%d", opts.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("serving lint results", "addr", addr)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", addr)

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case <-cmd.Context().Done():
		return server.Close()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
