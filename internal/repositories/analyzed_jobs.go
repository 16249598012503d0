package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type JobFilter struct {
	Status   models.JobStatus
	MinScore int
	Limit    int
}

type AnalyzedJobs struct {
	db *gorm.DB
}

func NewAnalyzedJobsRepository(db *gorm.DB) *AnalyzedJobs {
	return &AnalyzedJobs{db: db}
}

// Save inserts or replaces the analysis of a job. Status, notes and application date of an
// already stored job are kept.
func (repo *AnalyzedJobs) Save(ctx context.Context, job models.AnalyzedJob) error {
	job.AnalyzedDate = job.AnalyzedDate.UTC()
	job.LastUpdated = job.LastUpdated.UTC()

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.AnalyzedJob
		err := tx.First(&existing, "job_id = ?", job.JobID).Error
		switch {
		case err == nil:
			job.Status = existing.Status
			job.Notes = existing.Notes
			job.ApplicationDate = existing.ApplicationDate
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Save(&job).Error
	})
}

func (repo *AnalyzedJobs) Get(ctx context.Context, jobID string) (*models.AnalyzedJob, error) {
	var job models.AnalyzedJob
	if err := repo.db.WithContext(ctx).First(&job, "job_id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// List returns the most recently analyzed jobs first.
func (repo *AnalyzedJobs) List(ctx context.Context, filter JobFilter) ([]models.AnalyzedJob, error) {
	query := repo.db.WithContext(ctx).Order("analyzed_date DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinScore > 0 {
		query = query.Where("match_score >= ?", filter.MinScore)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var jobs []models.AnalyzedJob
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateTracking writes the user-owned fields of a job.
func (repo *AnalyzedJobs) UpdateTracking(ctx context.Context, job models.AnalyzedJob) error {
	var applicationDate any
	if job.ApplicationDate != nil {
		applicationDate = job.ApplicationDate.UTC()
	}

	res := repo.db.WithContext(ctx).
		Model(&models.AnalyzedJob{}).
		Where("job_id = ?", job.JobID).
		Updates(map[string]any{
			"status":           job.Status,
			"notes":            job.Notes,
			"application_date": applicationDate,
			"last_updated":     job.LastUpdated.UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *AnalyzedJobs) Delete(ctx context.Context, jobID string) error {
	res := repo.db.WithContext(ctx).Delete(&models.AnalyzedJob{}, "job_id = ?", jobID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *AnalyzedJobs) RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.AnalyzedJob{}, "last_updated < ?", expirationTime.UTC())
	return res.RowsAffected, res.Error
}
