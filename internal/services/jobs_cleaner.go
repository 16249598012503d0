package services

import (
	"context"
	"time"

	"github.com/maxaizer/jobfit/internal/logger"
	"github.com/maxaizer/jobfit/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type jobsCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error)
}

// JobsCleaner drops analyzed jobs not touched for retentionDays.
type JobsCleaner struct {
	jobs          jobsCleanupRepository
	cron          *cron.Cron
	retentionDays int
	now           func() time.Time
}

func NewJobsCleaner(jobs jobsCleanupRepository, retentionDays int, schedule string) (*JobsCleaner, error) {
	if retentionDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	jc := &JobsCleaner{
		jobs:          jobs,
		cron:          cron.New(),
		retentionDays: retentionDays,
		now:           time.Now,
	}

	_, err := jc.cron.AddFunc(schedule, func() {
		_, _ = jc.Clean(context.Background())
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cleanup schedule %q", schedule)
	}

	jc.cron.Start()
	log.Infof("jobs cleaner started, retention in days: %d, schedule: %s", jc.retentionDays, schedule)
	return jc, nil
}

func (jc *JobsCleaner) Stop() {
	<-jc.cron.Stop().Done()
}

func (jc *JobsCleaner) Clean(ctx context.Context) (int64, error) {
	expirationTime := jc.now().AddDate(0, 0, -jc.retentionDays)
	rowsAffected, err := jc.jobs.RemoveOlderThan(ctx, expirationTime)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to clean old jobs: %v", err)
		return 0, err
	}

	metrics.JobsRemovedCounter.Add(float64(rowsAffected))
	log.Infof("jobs last updated before %v were cleaned, affected rows: %v", expirationTime, rowsAffected)
	return rowsAffected, nil
}
