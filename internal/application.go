package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-backend/internal/cli"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the command named by args.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	app := &cli.App{
		Logger: logger,
		Config: conf,
	}

	records, closeRecords, err := openRecords(ctx, log, conf)
	if err != nil {
		log.Error("app startup failed", "error", err)
		return err
	}
	defer closeRecords()

	app.Records = records

	return cli.Execute(ctx, app, args)
}

// openRecords connects the history feed. It returns a nil repository when the
// feed is disabled.
func openRecords(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.RecordRepository, func(), error) {
	if !conf.Redis.Enabled {
		return nil, func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewRecordRepository(redisStorage, conf.Redis.HistoryTTL), closeStorage, nil
}
