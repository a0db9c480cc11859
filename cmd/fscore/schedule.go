package main

import (
	"context"
	"fmt"

	"fscoreportfolio/cmd"
	"fscoreportfolio/internal/app"
	"fscoreportfolio/internal/logger"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	refreshSpec  string
	optimizeSpec string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run refresh and optimize on cron schedules until interrupted",
	RunE: func(c *cobra.Command, args []string) error {
		return withDependencies(c.Context(), func(ctx context.Context, deps *cmd.Dependencies) error {
			scheduler, err := newScheduler(ctx, refreshSpec, optimizeSpec,
				func(ctx context.Context) error {
					_, err := deps.RefreshHandler.Refresh(ctx, app.RefreshInput{})
					return err
				},
				func(ctx context.Context) error {
					_, err := deps.OptimizeHandler.Optimize(ctx, false)
					return err
				},
			)
			if err != nil {
				return err
			}

			scheduler.Start()
			logger.FromContext(ctx).Infow("scheduler started", "refresh", refreshSpec, "optimize", optimizeSpec)
			<-ctx.Done()
			<-scheduler.Stop().Done()
			return nil
		})
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&refreshSpec, "refresh-cron", "0 6 * * *", "cron spec for refresh")
	scheduleCmd.Flags().StringVar(&optimizeSpec, "optimize-cron", "0 7 * * 1", "cron spec for optimize")
}

type job func(ctx context.Context) error

// newScheduler registers refresh and optimize. Runs of the same job never
// overlap; a run still going when its next tick fires is skipped.
func newScheduler(ctx context.Context, refresh, optimize string, refreshJob, optimizeJob job) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	for _, j := range []struct {
		name string
		spec string
		run  job
	}{
		{"refresh", refresh, refreshJob},
		{"optimize", optimize, optimizeJob},
	} {
		j := j
		if j.spec == "" {
			continue
		}
		_, err := c.AddFunc(j.spec, func() {
			log := logger.FromContext(ctx)
			log.Infow("running scheduled job", "job", j.name)
			if err := j.run(ctx); err != nil {
				log.Errorw("scheduled job failed", "job", j.name, "error", err.Error())
			}
		})
		if err != nil {
			return nil, fmt.Errorf("invalid %s schedule %q: %w", j.name, j.spec, err)
		}
	}
	return c, nil
}
