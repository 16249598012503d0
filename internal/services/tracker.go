package services

import (
	"context"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/export"
	"github.com/maxaizer/jobfit/internal/logger"
	"github.com/maxaizer/jobfit/internal/repositories"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type trackedJobRepository interface {
	Get(ctx context.Context, jobID string) (*models.AnalyzedJob, error)
	List(ctx context.Context, filter repositories.JobFilter) ([]models.AnalyzedJob, error)
	UpdateTracking(ctx context.Context, job models.AnalyzedJob) error
	Delete(ctx context.Context, jobID string) error
}

// Tracker manages the user-owned part of analyzed jobs: application status, notes and history.
type Tracker struct {
	jobs trackedJobRepository
	now  func() time.Time
}

func NewTracker(jobs trackedJobRepository) *Tracker {
	return &Tracker{jobs: jobs, now: time.Now}
}

// UpdateStatus moves a job to status. The application date is recorded when the job
// becomes applied.
func (t *Tracker) UpdateStatus(ctx context.Context, jobID string, status string) (*models.AnalyzedJob, error) {
	newStatus, err := models.ToJobStatus(status)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidStatus, "%q", status)
	}

	job, err := t.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := t.now()
	if newStatus == models.StatusApplied && job.Status != models.StatusApplied {
		job.ApplicationDate = &now
	}
	job.Status = newStatus
	job.LastUpdated = now

	if err = t.jobs.UpdateTracking(ctx, *job); err != nil {
		return nil, t.wrapDbError(err, "failed to update status")
	}
	log.Infof("job %s moved to %s", jobID, newStatus)
	return job, nil
}

func (t *Tracker) SetNotes(ctx context.Context, jobID string, notes string) (*models.AnalyzedJob, error) {
	job, err := t.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.Notes = notes
	job.LastUpdated = t.now()
	if err = t.jobs.UpdateTracking(ctx, *job); err != nil {
		return nil, t.wrapDbError(err, "failed to update notes")
	}
	return job, nil
}

func (t *Tracker) Delete(ctx context.Context, jobID string) error {
	if err := t.jobs.Delete(ctx, jobID); err != nil {
		return t.wrapDbError(err, "failed to delete job")
	}
	return nil
}

func (t *Tracker) List(ctx context.Context, filter repositories.JobFilter) ([]models.AnalyzedJob, error) {
	return t.jobs.List(ctx, filter)
}

// Export renders the whole history in format ("json", "csv" or "md") and returns the
// suggested file name with the content.
func (t *Tracker) Export(ctx context.Context, format string) (string, string, error) {
	jobs, err := t.jobs.List(ctx, repositories.JobFilter{})
	if err != nil {
		return "", "", t.wrapDbError(err, "failed to list jobs")
	}

	now := t.now()
	var content string
	switch format {
	case "json":
		content, err = export.ToJSON(jobs)
	case "csv":
		content, err = export.ToCSV(jobs)
	case "md":
		content = export.ToMarkdown(jobs, now)
	default:
		return "", "", errors.Wrapf(ErrUnsupportedExport, "%q", format)
	}
	if err != nil {
		return "", "", err
	}

	return export.FileName(format, now), content, nil
}

func (t *Tracker) wrapDbError(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("%s: %v", message, err)
	return errors.Wrap(err, message)
}
