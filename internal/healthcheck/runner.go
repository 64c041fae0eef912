package healthcheck

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/healthcheck/internal/config"
	"github.com/hamed0406/healthcheck/internal/domain"
	"github.com/hamed0406/healthcheck/internal/probe"
)

// Runner performs one full pass: load config, probe every URL, summarize.
// It keeps no state between runs, so one Runner can serve concurrent requests.
type Runner struct {
	ConfigPath string
	Logger     *zap.Logger
	Hostname   func() (string, error)
	Workers    int // 0 means probe.DefaultWorkers

	// NewChecker builds the checker for a loaded config; nil uses HTTPChecker.
	NewChecker func(cfg *config.Config) probe.Checker
}

func NewRunner(logger *zap.Logger, configPath string) *Runner {
	return &Runner{
		ConfigPath: configPath,
		Logger:     logger,
		Hostname:   os.Hostname,
	}
}

// Run returns an error only when the configuration cannot be loaded.
func (r *Runner) Run(ctx context.Context) (domain.HealthReport, error) {
	cfg, err := config.Load(r.ConfigPath)
	if err != nil {
		return domain.HealthReport{}, err
	}

	checker := r.checker(cfg)
	if c, ok := checker.(interface{ CloseIdleConnections() }); ok {
		defer c.CloseIdleConnections()
	}

	start := time.Now()
	results := probe.NewProber(checker, r.Workers).Run(ctx, cfg.URLs)
	rep := domain.Summarize(len(cfg.URLs), results, r.hostname())

	r.Logger.Info("probe_run_complete",
		zap.Int("urls", rep.URLs),
		zap.Int("successful", rep.SuccessfulResponses),
		zap.Int("unsuccessful", rep.UnsuccessfulResponses),
		zap.String("health_status", string(rep.HealthStatus)),
		zap.Duration("took", time.Since(start)),
	)
	return rep, nil
}

func (r *Runner) checker(cfg *config.Config) probe.Checker {
	if r.NewChecker != nil {
		return r.NewChecker(cfg)
	}
	return probe.NewHTTPChecker(cfg.SuccessCodes, cfg.TimeoutDuration(), cfg.VerifyTLS)
}

func (r *Runner) hostname() string {
	if r.Hostname == nil {
		return ""
	}
	h, err := r.Hostname()
	if err != nil {
		r.Logger.Warn("hostname_lookup_failed", zap.Error(err))
		return ""
	}
	return h
}
