package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/healthcheck/internal/config"
	"github.com/hamed0406/healthcheck/internal/domain"
	"github.com/hamed0406/healthcheck/internal/healthcheck"
	"github.com/hamed0406/healthcheck/internal/logging"
	"github.com/hamed0406/healthcheck/internal/report"
)

type healthRunner interface {
	Run(ctx context.Context) (domain.HealthReport, error)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run only fails when the health check itself cannot run. Server settings in
// the environment are not read, and a log sink that cannot be opened is
// reported and skipped.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(config.LoggingFromEnv(), stderr)
	defer logger.Sync()

	cmd := newRootCmd(healthcheck.NewRunner(logger, config.DefaultPath))
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// newLogger writes to a file only when LOG_DIR is set.
func newLogger(lg config.Logging, stderr io.Writer) *zap.Logger {
	if lg.Dir == "" {
		return zap.NewNop()
	}
	logger, err := logging.NewLogger(lg.Dir, lg.Level)
	if err != nil {
		fmt.Fprintln(stderr, "warning: logging disabled:", err)
		return zap.NewNop()
	}
	return logger
}

// newRootCmd exits 0 whatever the health verdict; only a failed run is an error.
func newRootCmd(runner healthRunner) *cobra.Command {
	var reportFlag, simpleFlag bool

	cmd := &cobra.Command{
		Use:          "healthcheck",
		Short:        "HTTP health check of the URLs listed in " + config.DefaultPath,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := report.ModeFromFlags(reportFlag, simpleFlag)

			rep, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			out, err := report.Render(mode, rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Body)
			return nil
		},
	}
	cmd.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}
	cmd.Flags().BoolVar(&reportFlag, "report", false, "Output full report")
	cmd.Flags().BoolVar(&simpleFlag, "simple", false, "Output simple report")
	return cmd
}
