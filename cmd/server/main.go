package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vncsmyrnk/pollingapp/internal/adapters/handler/http"
	"github.com/vncsmyrnk/pollingapp/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/pollingapp/internal/config"
	"github.com/vncsmyrnk/pollingapp/internal/core/services"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:          cfg.Database.Driver,
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime.Duration(),
	})
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected", "driver", cfg.Database.Driver, "url", cfg.Database.Redacted())

	if cfg.MigrateOnStart() {
		applied, err := sqlstore.Migrate(ctx, db, cfg.Database.Driver)
		if err != nil {
			return err
		}
		logger.Info("database schema ready", "applied", applied)
	}

	pollRepo := sqlstore.NewPollRepository(db)
	voteRepo := sqlstore.NewVoteRepository(db)

	pollService := services.NewPollService(pollRepo)
	voteService := services.NewVoteService(pollRepo, voteRepo)

	handler := http.NewHandler(
		http.NewPollHandler(pollService, logger),
		http.NewVoteHandler(voteService, logger),
		http.NewHealthHandler(db, logger),
		logger,
	)
	server := &stdhttp.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	logger.Info("gracefully shutting down", "timeout", cfg.HTTP.ShutdownTimeout.Duration().String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration())
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
