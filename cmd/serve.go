package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"finecto/internal/config"
	"finecto/internal/journal"
	"finecto/internal/logger"
	"finecto/internal/server"
	"finecto/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the company-rule transform HTTP API",
	Long: `Start the HTTP API that applies per-company business rules to invoice
and vendor records.

Endpoints:
  POST /invoice        Transform a single invoice
  POST /invoice/batch  Transform a non-empty array of invoices
  POST /vendor         Transform a single vendor
  GET  /health         Liveness check

Every transformed record is appended to the JSON Lines journal configured
via JOURNAL_PATH (default: db/result.jsonl).`,
	Example: `  # Serve on the configured port (default 3000)
  finecto serve

  # Override the listen port
  finecto serve --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "", "Override the configured listen port")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	writer := journal.NewWriter(cfg.JournalPath)
	srv := server.New(
		usecase.NewInvoiceTransform(writer),
		usecase.NewVendorTransform(writer),
	)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("journal", cfg.JournalPath).
			Msg("HTTP server starting")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info().Msg("HTTP server stopped gracefully")
	return nil
}
