package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobfit/internal/clients/hh"
	"github.com/maxaizer/jobfit/internal/config"
	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/events"
	"github.com/maxaizer/jobfit/internal/logger"
	"github.com/maxaizer/jobfit/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const lastPublishedStateKey = "watcher.last_published_at"

type vacancySource interface {
	GetVacancies(ctx context.Context, parameters hh.SearchParameters) ([]hh.VacancyPreview, int, error)
	GetVacancy(ctx context.Context, id string) (hh.Vacancy, error)
	ResolveAreaID(ctx context.Context, area string) (string, error)
}

type postingAnalyzer interface {
	Analyze(ctx context.Context, job models.JobPosting) (*models.AnalysisResult, error)
}

type stateRepository interface {
	Save(ctx context.Context, id string, value []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
}

// VacanciesWatcher polls HeadHunter for new vacancies matching the configured search and
// analyzes each one against the stored résumé.
type VacanciesWatcher struct {
	source   vacancySource
	analyzer postingAnalyzer
	state    stateRepository
	cache    *gocache.Cache
	config   config.WatcherConfig
	areaID   string
	interval time.Duration
	worthy   atomic.Int64
	now      func() time.Time
}

func NewVacanciesWatcher(bus EventBus.Bus, source vacancySource, analyzer postingAnalyzer,
	state stateRepository, cfg config.WatcherConfig) (*VacanciesWatcher, error) {

	w := &VacanciesWatcher{
		source:   source,
		analyzer: analyzer,
		state:    state,
		cache:    gocache.New(24*time.Hour, time.Hour),
		config:   cfg,
		interval: cfg.Interval,
		now:      time.Now,
	}
	if err := bus.Subscribe(events.JobAnalyzedTopic, w.onJobAnalyzed); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *VacanciesWatcher) Run(ctx context.Context) {
	for {
		startTime := time.Now()
		log.Infof("checking hh vacancies at %v", startTime)

		analyzed, err := w.RunOnce(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Warnf("vacancy check stopped early: %v", err)
		}

		executionTime := time.Since(startTime)
		log.Infof("vacancy check ended after %v, analyzed %d vacancies", executionTime, analyzed)

		var sleepTime time.Duration
		if executionTime <= w.interval {
			sleepTime = w.interval - executionTime
		} else {
			w.interval = executionTime + w.config.Interval
			log.Infof("watch interval extended to %v", w.interval)
		}

		log.Infof("next vacancy check at %v", time.Now().Add(sleepTime))
		select {
		case <-ctx.Done():
			return
		case <-time.After(sleepTime):
		}
	}
}

// RunOnce fetches vacancies published since the last run and returns how many were analyzed.
func (w *VacanciesWatcher) RunOnce(ctx context.Context) (int, error) {
	w.worthy.Store(0)

	if w.areaID == "" && w.config.Area != "" {
		areaID, err := w.source.ResolveAreaID(ctx, w.config.Area)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeHhApi).Errorf("failed to resolve area: %v", err)
			return 0, err
		}
		w.areaID = areaID
	}

	dateFrom, err := w.lastPublished(ctx)
	if err != nil {
		return 0, err
	}

	var (
		analyzed int
		latest   time.Time
	)

	for page := 0; ; page++ {
		select {
		case <-ctx.Done():
			return analyzed, ctx.Err()
		default:
		}

		params := hh.SearchParameters{
			Text:                   w.config.SearchText,
			AreaID:                 w.areaID,
			DateFrom:               dateFrom,
			OrderByPublicationTime: true,
			Page:                   page,
			PerPage:                w.config.PerPage,
		}

		previews, pages, err := w.source.GetVacancies(ctx, params)
		if errors.Is(err, hh.ErrTooDeepPagination) {
			break
		}
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeHhApi).Errorf("failed to get vacancy previews: %v", err)
			return analyzed, err
		}

		for _, preview := range previews {
			if preview.PublishedAt.After(latest) {
				latest = preview.PublishedAt.Time
			}

			err = w.analyzeVacancy(ctx, preview.ID)
			if errors.Is(err, ErrNoResume) || errors.Is(err, ErrNoSkills) || errors.Is(err, context.Canceled) {
				return analyzed, err
			}
			if err == nil {
				analyzed++
			}
		}

		if len(previews) == 0 || page+1 >= pages {
			break
		}
	}

	if latest.After(dateFrom) {
		w.saveLastPublished(ctx, latest)
	}
	if worthy := w.worthy.Load(); worthy > 0 {
		log.Infof("%d new vacancies are worth applying to", worthy)
	}

	return analyzed, nil
}

func (w *VacanciesWatcher) analyzeVacancy(ctx context.Context, id string) error {
	start := time.Now()
	vacancy, err := w.source.GetVacancy(ctx, id)
	metrics.AnalysisStepDuration.WithLabelValues("info_retrieval").Observe(time.Since(start).Seconds())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHhApi).Errorf("failed to get vacancy %s: %v", id, err)
		return err
	}

	descriptionHash := sha256.Sum256([]byte(vacancy.Description))
	cacheID := hex.EncodeToString(descriptionHash[:])
	if _, found := w.cache.Get(cacheID); found {
		return nil
	}

	posting, err := vacancy.ToJobPosting()
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAnalysis).Error(err)
		return err
	}

	if _, err = w.analyzer.Analyze(ctx, posting); err != nil {
		if !errors.Is(err, ErrNoResume) && !errors.Is(err, ErrNoSkills) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAnalysis).
				Errorf("failed to analyze vacancy %s: %v", vacancy.Url, err)
		}
		return err
	}

	w.cache.SetDefault(cacheID, struct{}{})
	return nil
}

func (w *VacanciesWatcher) lastPublished(ctx context.Context) (time.Time, error) {
	value, err := w.state.Load(ctx, lastPublishedStateKey)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load watcher state: %v", err)
		return time.Time{}, err
	}
	if value == nil {
		return w.now().Add(-24 * time.Hour), nil
	}

	var last time.Time
	if err = last.UnmarshalText(value); err != nil {
		log.Warnf("ignoring corrupt watcher state %q: %v", value, err)
		return w.now().Add(-24 * time.Hour), nil
	}
	return last, nil
}

func (w *VacanciesWatcher) saveLastPublished(ctx context.Context, latest time.Time) {
	// hh treats date_from as inclusive
	value, _ := latest.Add(time.Second).MarshalText()
	if err := w.state.Save(ctx, lastPublishedStateKey, value); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save watcher state: %v", err)
	}
}

func (w *VacanciesWatcher) onJobAnalyzed(event events.JobAnalyzed) {
	if event.Job.Source == models.SourceHH && event.Job.Recommendation == models.RecommendationApply {
		w.worthy.Add(1)
	}
}
