package main

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

	"github.com/matejg/najdeno/internal/api"
	"github.com/matejg/najdeno/internal/config"
	"github.com/matejg/najdeno/internal/db"
	"github.com/matejg/najdeno/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the JSON API and dashboard UI. The database is created,
migrated, and seeded on first run.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("db", "", "path to SQLite database file")
	serveCmd.Flags().String("addr", "", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	v, err := config.New(flagConfigFile)
	if err != nil {
		return err
	}
	v.BindPFlag(config.KeyDBPath, cmd.Flags().Lookup("db"))
	v.BindPFlag(config.KeyListenAddr, cmd.Flags().Lookup("addr"))

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := config.SetupLogger(cfg)

	// Bootstrap on first run, migrate on every start.
	_, statErr := os.Stat(cfg.DBPath)
	firstRun := os.IsNotExist(statErr)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	if err := db.Seed(cmd.Context(), database); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if firstRun {
		logger.Info("database created and seeded", "path", cfg.DBPath)
	}

	// API routes take priority; the embedded dashboard handles the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database))
	mux.Handle("/", http.FileServer(http.FS(web.StaticFS())))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Logging(logger)(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("server listening", "addr", cfg.ListenAddr, "db", cfg.DBPath)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
