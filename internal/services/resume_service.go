package services

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobfit/internal/document"
	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/events"
	"github.com/maxaizer/jobfit/internal/logger"
	"github.com/maxaizer/jobfit/internal/metrics"
	"github.com/maxaizer/jobfit/internal/repositories"
	"github.com/maxaizer/jobfit/internal/resume"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type textConverter interface {
	ToText(path string) (string, error)
}

type profileRepository interface {
	Get(ctx context.Context, id string) (*models.StoredProfile, error)
	Save(ctx context.Context, profile models.StoredProfile) error
}

// ResumeService owns the single stored profile. Every upload replaces it.
type ResumeService struct {
	bus       EventBus.Bus
	converter textConverter
	profiles  profileRepository
	now       func() time.Time
}

func NewResumeService(bus EventBus.Bus, converter textConverter, profiles profileRepository) *ResumeService {
	return &ResumeService{bus: bus, converter: converter, profiles: profiles, now: time.Now}
}

func (s *ResumeService) Upload(ctx context.Context, path string) (*models.StoredProfile, error) {
	start := time.Now()
	text, err := s.converter.ToText(path)
	metrics.AnalysisStepDuration.WithLabelValues("document_conversion").Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDocument).
			Errorf("failed to convert resume %s: %v", path, err)
		return nil, errors.Wrap(err, "failed to convert resume")
	}

	return s.ParseText(ctx, filepath.Base(path), text)
}

// ParseText stores a profile built from already extracted résumé text.
func (s *ResumeService) ParseText(ctx context.Context, fileName, text string) (*models.StoredProfile, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < document.MinContentLength {
		return nil, document.ErrContentTooShort
	}

	now := s.now()
	start := time.Now()
	profile := resume.ParseAt(text, now)
	metrics.AnalysisStepDuration.WithLabelValues("resume_parsing").Observe(time.Since(start).Seconds())

	stored := models.StoredProfile{
		ID:         models.DefaultProfileID,
		FileName:   fileName,
		Profile:    profile,
		UploadedAt: now,
	}
	if err := s.profiles.Save(ctx, stored); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save profile: %v", err)
		return nil, errors.Wrap(err, "failed to save profile")
	}

	metrics.ResumesParsedCounter.Inc()
	s.bus.Publish(events.ProfileUpdatedTopic, events.ProfileUpdated{
		ProfileID: stored.ID,
		Skills:    len(profile.Skills),
	})
	log.Infof("resume %s parsed: %d skills, %d experience entries, %.1f years",
		fileName, len(profile.Skills), len(profile.Experience), profile.TotalExperienceYears)

	return &stored, nil
}

func (s *ResumeService) Current(ctx context.Context) (*models.StoredProfile, error) {
	profile, err := s.profiles.Get(ctx, models.DefaultProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoResume
		}
		return nil, err
	}
	return profile, nil
}
