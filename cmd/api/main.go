package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"

	"github.com/angelmontes7/openplay-wagers/internal/api"
	"github.com/angelmontes7/openplay-wagers/internal/infra/logging"
	"github.com/angelmontes7/openplay-wagers/internal/infra/metrics"
	"github.com/angelmontes7/openplay-wagers/internal/infra/pgutils"
	"github.com/angelmontes7/openplay-wagers/internal/services/balance"
	"github.com/angelmontes7/openplay-wagers/internal/services/wager"
	"github.com/angelmontes7/openplay-wagers/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(apiConfig)

	err := envconfig.Process("", cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdownqueue.Add(func(context.Context) error {
		return db.Close()
	})

	engine := wager.New(db)
	balances := balance.New(db)

	// --- HTTP servers ---
	srv := api.NewServer(cfg.Port, engine, balances)

	metricsSrv := metrics.NewServer(cfg.MetricsPort, func(c context.Context) error {
		return db.PingContext(c)
	})

	shutdownqueue.Add(func(c context.Context) error {
		slog.Info("shutting down servers")

		err := srv.Shutdown(c)
		merr := metricsSrv.Shutdown(c)

		return errors.Join(err, merr)
	})

	errCh := make(chan error, 2)

	go func() {
		serr := srv.ListenAndServe()
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	go func() {
		serr := metricsSrv.ListenAndServe()
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("wager API started", "port", cfg.Port, "metrics_port", cfg.MetricsPort)

	// --- Wait until either context cancels or a server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; deferred shutdownqueue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
