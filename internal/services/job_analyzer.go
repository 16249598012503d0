package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/jobfit/internal/analysis"
	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/events"
	"github.com/maxaizer/jobfit/internal/logger"
	"github.com/maxaizer/jobfit/internal/metrics"
	"github.com/maxaizer/jobfit/internal/repositories"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type profileReader interface {
	Get(ctx context.Context, id string) (*models.StoredProfile, error)
}

type analyzedJobRepository interface {
	Save(ctx context.Context, job models.AnalyzedJob) error
	Get(ctx context.Context, jobID string) (*models.AnalyzedJob, error)
}

type JobAnalyzer struct {
	bus                    EventBus.Bus
	profiles               profileReader
	jobs                   analyzedJobRepository
	validate               *validator.Validate
	minimumMatchPercentage int
	now                    func() time.Time
}

func NewJobAnalyzer(bus EventBus.Bus, profiles profileReader, jobs analyzedJobRepository,
	minimumMatchPercentage int) *JobAnalyzer {

	return &JobAnalyzer{
		bus:                    bus,
		profiles:               profiles,
		jobs:                   jobs,
		validate:               validator.New(),
		minimumMatchPercentage: minimumMatchPercentage,
		now:                    time.Now,
	}
}

// Analyze scores job against the stored résumé and records the result. It fails with
// ErrNoResume or ErrNoSkills when there is nothing to match against.
func (a *JobAnalyzer) Analyze(ctx context.Context, job models.JobPosting) (*models.AnalysisResult, error) {
	if err := a.validate.Struct(job); err != nil {
		return nil, errors.Wrap(err, "invalid job posting")
	}

	job.URL = analysis.NormalizeJobURL(job.URL)
	if job.Source == "" {
		if source, ok := analysis.DetectJobSource(job.URL); ok {
			job.Source = source
		}
	}

	stored, err := a.profiles.Get(ctx, models.DefaultProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoResume
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load profile: %v", err)
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if len(stored.Profile.Skills) == 0 {
		return nil, ErrNoSkills
	}

	start := time.Now()
	result := analysis.AnalyzeJobAt(job, stored.Profile, a.now())
	metrics.AnalysisStepDuration.WithLabelValues("matching").Observe(time.Since(start).Seconds())

	if err = a.jobs.Save(ctx, models.NewAnalyzedJob(job, result)); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save analysis of %s: %v", job.URL, err)
		return nil, errors.Wrap(err, "failed to save analysis")
	}

	saved, err := a.jobs.Get(ctx, result.JobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to reload analysis of %s: %v", job.URL, err)
		return nil, errors.Wrap(err, "failed to reload analysis")
	}

	metrics.AnalysesCounter.WithLabelValues(string(result.Recommendation)).Inc()
	metrics.MatchScore.Observe(float64(result.MatchScore))

	belowThreshold := result.MatchScore < a.minimumMatchPercentage
	if belowThreshold {
		log.Infof("%s scored %d%%, below the minimum of %d%%", job.URL, result.MatchScore, a.minimumMatchPercentage)
	}

	a.bus.Publish(events.JobAnalyzedTopic, events.JobAnalyzed{
		Job:            *saved,
		Confidence:     result.Confidence,
		BelowThreshold: belowThreshold,
	})

	return &result, nil
}
