package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/repositories"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type stores struct {
	profiles *repositories.Profiles
	jobs     *repositories.AnalyzedJobs
	state    *repositories.State
}

func newStores(t *testing.T) stores {
	t.Helper()
	dbContext, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "jobfit.db"))
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())
	t.Cleanup(func() { _ = dbContext.Close() })

	return stores{
		profiles: repositories.NewProfilesRepository(dbContext.DB),
		jobs:     repositories.NewAnalyzedJobsRepository(dbContext.DB),
		state:    repositories.NewStateRepository(dbContext.DB),
	}
}

func saveProfile(t *testing.T, s stores, skills []string, years float64) {
	t.Helper()
	require.NoError(t, s.profiles.Save(context.Background(), models.StoredProfile{
		ID:       models.DefaultProfileID,
		FileName: "cv.txt",
		Profile: models.ResumeProfile{
			Skills:               skills,
			TotalExperienceYears: years,
		},
		UploadedAt: fixedNow,
	}))
}

func goPosting(url string) models.JobPosting {
	return models.JobPosting{
		URL:         url,
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Required:\nGo\nPostgreSQL\nDocker\nLinux\nGit\n\nNice to have:\nKubernetes",
	}
}
