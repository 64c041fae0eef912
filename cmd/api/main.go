package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/healthcheck/internal/config"
	"github.com/hamed0406/healthcheck/internal/healthcheck"
	"github.com/hamed0406/healthcheck/internal/httpapi"
	"github.com/hamed0406/healthcheck/internal/httpserver"
	"github.com/hamed0406/healthcheck/internal/logging"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := serve(ctx, cfg, logger); err != nil {
		log.Fatal(err)
	}
}

// serve runs the API until ctx is cancelled. The probe config is read
// per request, so edits to config.json apply without a restart.
func serve(ctx context.Context, cfg config.Runtime, logger *zap.Logger) (err error) {
	defer func() { err = multierr.Append(err, logger.Sync()) }()

	runner := healthcheck.NewRunner(logger, config.DefaultPath)
	api := httpapi.NewServer(logger, runner)

	srv, err := httpserver.New(cfg.Addr, api.Router(cfg.RateLimitRPM, cfg.RateLimitBurst))
	if err != nil {
		return err
	}
	if err := srv.Listen(); err != nil {
		logger.Error("api_listen_failed", zap.String("addr", cfg.Addr), zap.Error(err))
		return err
	}

	logger.Info("api_listen",
		zap.String("addr", srv.Addr()),
		zap.String("config", config.DefaultPath),
		zap.Int("rate_limit_rpm", cfg.RateLimitRPM),
	)
	if err := srv.Run(ctx); err != nil {
		logger.Error("api_stopped", zap.Error(err))
		return err
	}
	logger.Info("api_shutdown")
	return nil
}
