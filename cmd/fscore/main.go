package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fscoreportfolio/cmd"
	"fscoreportfolio/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "fscore",
	Short:         "Maintain security fundamentals and optimize an F-score portfolio",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(refreshCmd, scoreCmd, optimizeCmd, settingsCmd, scheduleCmd)
}

// withDependencies opens the database for the duration of run.
func withDependencies(ctx context.Context, run func(ctx context.Context, deps *cmd.Dependencies) error) error {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)
	return run(ctx, deps)
}

func main() {
	log := logger.New()
	defer log.Sync()
	zap.ReplaceGlobals(log.Desugar())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx, log)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorw("command failed", "error", err.Error())
		stop()
		os.Exit(1)
	}
}
