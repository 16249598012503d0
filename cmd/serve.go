package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/maxaizer/jobfit/internal/metrics"
	"github.com/maxaizer/jobfit/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the retention cleaner, metrics and the HeadHunter watcher until interrupted",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := application.cfg
	metrics.StartMetricsServer(cfg.Metrics.Address)

	if cfg.Analysis.ResumePath != "" {
		if _, err := application.resumes.Upload(ctx, cfg.Analysis.ResumePath); err != nil {
			log.Errorf("can't load resume from %s: %v", cfg.Analysis.ResumePath, err)
		}
	}

	cleaner, err := services.NewJobsCleaner(application.jobs, cfg.Analysis.RetentionDays, cfg.Analysis.CleanupCron)
	if err != nil {
		return errors.Wrap(err, "can't create cleaner")
	}
	defer cleaner.Stop()

	var tasks []func(context.Context)
	if cfg.Watcher.Enabled {
		watcher, err := services.NewVacanciesWatcher(application.bus, application.hhClient, application.analyzer,
			application.state, cfg.Watcher)
		if err != nil {
			return errors.Wrap(err, "can't create watcher")
		}
		tasks = append(tasks, watcher.Run)
	}

	runUntilDone(ctx, tasks...)
	return nil
}

// runUntilDone starts every task and returns once ctx is done and all tasks have returned.
func runUntilDone(ctx context.Context, tasks ...func(context.Context)) {
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task(ctx)
		}()
	}

	<-ctx.Done()
	log.Info("Shutting down services...")
	wg.Wait()
}
