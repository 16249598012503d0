package main

import (
	stderrors "errors"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobfit/internal/clients/hh"
	"github.com/maxaizer/jobfit/internal/config"
	"github.com/maxaizer/jobfit/internal/document"
	"github.com/maxaizer/jobfit/internal/events"
	"github.com/maxaizer/jobfit/internal/logger"
	"github.com/maxaizer/jobfit/internal/repositories"
	"github.com/maxaizer/jobfit/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var application *app

type app struct {
	cfg       *config.Config
	dbContext *repositories.DbContext
	bus       EventBus.Bus
	hhClient  *hh.Client
	jobs      *repositories.AnalyzedJobs
	state     *repositories.State
	resumes   *services.ResumeService
	analyzer  *services.JobAnalyzer
	tracker   *services.Tracker
}

func newApp() (*app, error) {
	cfg := config.Get()

	if err := logger.Setup(cfg.Logger); err != nil {
		return nil, err
	}

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		logger.Cleanup()
		return nil, errors.Wrap(err, "can't create db context")
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		logger.Cleanup()
		return nil, errors.Wrap(err, "can't migrate db context")
	}

	bus := EventBus.New()
	profiles := repositories.NewCachedProfiles(repositories.NewProfilesRepository(dbContext.DB))
	err = stderrors.Join(
		bus.Subscribe(events.ProfileUpdatedTopic, profiles.OnProfileUpdated),
		bus.Subscribe(events.JobAnalyzedTopic, logAnalyzedJob),
	)
	if err != nil {
		_ = dbContext.Close()
		logger.Cleanup()
		return nil, err
	}

	jobs := repositories.NewAnalyzedJobsRepository(dbContext.DB)

	hhClient := hh.NewClient()
	if cfg.Watcher.MaxRequestsPerSecond > 0 {
		hhClient.SetRateLimit(cfg.Watcher.MaxRequestsPerSecond)
	}

	return &app{
		cfg:       cfg,
		dbContext: dbContext,
		bus:       bus,
		hhClient:  hhClient,
		jobs:      jobs,
		state:     repositories.NewStateRepository(dbContext.DB),
		resumes:   services.NewResumeService(bus, document.NewConverter(), profiles),
		analyzer:  services.NewJobAnalyzer(bus, profiles, jobs, cfg.Analysis.MinimumMatchPercentage),
		tracker:   services.NewTracker(jobs),
	}, nil
}

func (a *app) Close() {
	if a == nil {
		return
	}
	if err := a.dbContext.Close(); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to close db: %v", err)
	}
	logger.Cleanup()
}

func logAnalyzedJob(event events.JobAnalyzed) {
	entry := log.WithFields(log.Fields{
		"job_id":         event.Job.JobID,
		"score":          event.Job.MatchScore,
		"recommendation": event.Job.Recommendation,
		"confidence":     event.Confidence,
	})
	if event.BelowThreshold {
		entry.Debugf("%s at %s analyzed", event.Job.Title, event.Job.Company)
		return
	}
	entry.Infof("%s at %s analyzed", event.Job.Title, event.Job.Company)
}
