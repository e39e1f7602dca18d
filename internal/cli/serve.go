package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"userapi-go/internal/config"
	"userapi-go/internal/database"
	"userapi-go/internal/database/migrate"
	"userapi-go/internal/logger"
	"userapi-go/internal/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), runMigrations)
		},
	}
	cmd.Flags().BoolVar(&runMigrations, "migrate", true, "apply pending migrations before serving")
	return cmd
}

// loadConfig initialises logging from APP_ENV, loads the configuration and
// re-initialises logging with the resolved environment.
func loadConfig() (*config.Config, error) {
	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger.Init(cfg.Env)
	return cfg, nil
}

func connect(cfg *config.Config) (*database.DB, error) {
	db, err := database.New(cfg.Database.DSN())
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		return nil, err
	}
	log.Info().Msg("Connected to database")
	return db, nil
}

func runServe(ctx context.Context, runMigrations bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.Info().
		Str("environment", cfg.Env).
		Str("log_level", zerolog.GlobalLevel().String()).
		Str("version", version).
		Str("commit", commit).
		Str("built", date).
		Msg("Starting userapi")
	cfg.Log()

	db, err := connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}()

	if health := db.Health(ctx); health["status"] != "up" {
		return fmt.Errorf("database health check failed: %s", health["error"])
	}

	if runMigrations {
		if err := migrate.RunMigrations(db.DB); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	srv, err := server.NewServer(cfg, db)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	httpServer, err := srv.Start()
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	done := make(chan struct{})
	go func() {
		defer close(done)

		select {
		case <-shutdown:
			log.Info().Msg("Shutdown signal received")
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		httpServer.SetKeepAlivesEnabled(false)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}()

	log.Info().
		Str("url", cfg.BaseURL).
		Msg("Server running")

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-done
		return fmt.Errorf("http server: %w", err)
	}

	<-done
	log.Info().Msg("Server shutdown completed")
	return nil
}
