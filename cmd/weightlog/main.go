package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"weightlog/internal/adapter/chart"
	"weightlog/internal/adapter/csvfile"
	adapthttp "weightlog/internal/adapter/http"
	"weightlog/internal/adapter/memory"
	"weightlog/internal/adapter/postgres"
	"weightlog/internal/app"
	"weightlog/internal/config"
	"weightlog/internal/domain"
	"weightlog/internal/logging"
)

type store interface {
	domain.ProfileRepository
	domain.RecordRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New(os.Stderr, "info", "console")
		fallback.Fatal().Err(err).Msg("config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	st, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage).Msg("open storage")
	}
	defer closeStore()

	tracker := app.NewTracker(
		app.NewProfileService(st),
		app.NewWeightService(st),
		app.NewChartsService(chart.New(cfg.ChartWidth, cfg.ChartHeight)),
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if tracker.Start(ctx) == app.NoProfile {
		log.Info().Msg("no profiles yet; create one with POST /api/profiles")
	}

	h := adapthttp.New(tracker, log).WithPasscodeHash(cfg.PasscodeHash).Handler()
	srv := &http.Server{Addr: cfg.Addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.Addr).Str("storage", cfg.Storage).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}

func openStore(cfg *config.Config, log zerolog.Logger) (store, func(), error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), func() {}, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		loc, err := cfg.Location()
		if err != nil {
			return nil, nil, err
		}
		return csvfile.New(cfg.ProfilesDir, loc, log), func() {}, nil
	}
}
