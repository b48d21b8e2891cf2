package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser front end",
	Long: `Starts the tarot draw web interface on the specified port.

The interface shows the deck options form, submits draws to the draw
service and displays the cards that come back.`,
	Example: `  # Start server on default port 8080
  shuffledraw serve

  # Start server on a custom port against a remote draw service
  shuffledraw serve --port 9000 --api-url https://draw.example.com`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newAPIClient()
		if err != nil {
			return err
		}

		handler, err := web.New(web.Options{
			Drawer:      client,
			DefaultForm: cfg.DefaultRequest(),
		})
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetString("port")
		return runServer(cmd.Context(), "Tarot draw interface", ":"+port, web.WithRequestLogging(handler.Routes()))
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}

// runServer serves until ctx is cancelled, then shuts down gracefully
func runServer(ctx context.Context, name, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info(name+" available", "addr", addr, "url", "http://localhost"+addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation (Ctrl+C) or server error
	select {
	case <-ctx.Done():
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
}
