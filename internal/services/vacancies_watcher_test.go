package services

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobfit/internal/clients/hh"
	"github.com/maxaizer/jobfit/internal/config"
	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVacancySource struct {
	mock.Mock
}

func (m *mockVacancySource) GetVacancies(ctx context.Context, params hh.SearchParameters) ([]hh.VacancyPreview, int, error) {
	args := m.Called(ctx, params)
	previews, _ := args.Get(0).([]hh.VacancyPreview)
	return previews, args.Int(1), args.Error(2)
}

func (m *mockVacancySource) GetVacancy(ctx context.Context, id string) (hh.Vacancy, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(hh.Vacancy), args.Error(1)
}

func (m *mockVacancySource) ResolveAreaID(ctx context.Context, area string) (string, error) {
	args := m.Called(ctx, area)
	return args.String(0), args.Error(1)
}

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Analyze(ctx context.Context, job models.JobPosting) (*models.AnalysisResult, error) {
	args := m.Called(ctx, job)
	result, _ := args.Get(0).(*models.AnalysisResult)
	return result, args.Error(1)
}

var watcherConfig = config.WatcherConfig{
	Enabled:              true,
	SearchText:           "golang",
	Area:                 "Москва",
	Interval:             time.Hour,
	PerPage:              20,
	MaxRequestsPerSecond: 5,
}

func preview(id string, published time.Time) hh.VacancyPreview {
	return hh.VacancyPreview{ID: id, Name: "Go developer " + id, PublishedAt: hh.CustomTime{Time: published}}
}

func vacancy(id, description string) hh.Vacancy {
	return hh.Vacancy{
		VacancyPreview: hh.VacancyPreview{ID: id, Name: "Go developer " + id, Url: "https://hh.ru/vacancy/" + id},
		Description:    description,
	}
}

func newTestWatcher(t *testing.T, source *mockVacancySource, analyzer *mockAnalyzer, s stores) *VacanciesWatcher {
	t.Helper()
	watcher, err := NewVacanciesWatcher(EventBus.New(), source, analyzer, s.state, watcherConfig)
	require.NoError(t, err)
	watcher.now = func() time.Time { return fixedNow }
	return watcher
}

func Test_VacanciesWatcher_RunOnce_AnalyzesNewVacanciesAndStoresProgress(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	source := &mockVacancySource{}
	analyzer := &mockAnalyzer{}
	latest := fixedNow.Add(-time.Hour)

	source.On("ResolveAreaID", mock.Anything, "Москва").Return("1", nil).Once()
	source.On("GetVacancies", mock.Anything, mock.MatchedBy(func(p hh.SearchParameters) bool {
		return p.Page == 0 && p.AreaID == "1" && p.Text == "golang" && p.DateFrom.Equal(fixedNow.Add(-24*time.Hour))
	})).Return([]hh.VacancyPreview{preview("1", latest), preview("2", latest.Add(-time.Hour))}, 1, nil).Once()
	source.On("GetVacancy", mock.Anything, "1").Return(vacancy("1", "<p>Go</p>"), nil)
	source.On("GetVacancy", mock.Anything, "2").Return(vacancy("2", "<p>Docker</p>"), nil)
	analyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(job models.JobPosting) bool {
		return job.Source == models.SourceHH
	})).Return(&models.AnalysisResult{}, nil).Twice()

	watcher := newTestWatcher(t, source, analyzer, s)
	analyzed, err := watcher.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, analyzed)
	analyzer.AssertExpectations(t)

	last, err := watcher.lastPublished(ctx)
	require.NoError(t, err)
	assert.True(t, latest.Add(time.Second).Equal(last))
}

func Test_VacanciesWatcher_SameDescription_AnalyzedOnce(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	source := &mockVacancySource{}
	analyzer := &mockAnalyzer{}

	source.On("ResolveAreaID", mock.Anything, "Москва").Return("1", nil).Once()
	source.On("GetVacancies", mock.Anything, mock.Anything).
		Return([]hh.VacancyPreview{preview("1", fixedNow), preview("2", fixedNow)}, 1, nil)
	source.On("GetVacancy", mock.Anything, "1").Return(vacancy("1", "<p>Same text</p>"), nil)
	source.On("GetVacancy", mock.Anything, "2").Return(vacancy("2", "<p>Same text</p>"), nil)
	analyzer.On("Analyze", mock.Anything, mock.Anything).Return(&models.AnalysisResult{}, nil).Once()

	watcher := newTestWatcher(t, source, analyzer, s)
	_, err := watcher.RunOnce(ctx)
	require.NoError(t, err)
	_, err = watcher.RunOnce(ctx)
	require.NoError(t, err)

	analyzer.AssertNumberOfCalls(t, "Analyze", 1)
	source.AssertNumberOfCalls(t, "ResolveAreaID", 1)
}

func Test_VacanciesWatcher_NoResume_StopsRun(t *testing.T) {
	s := newStores(t)
	source := &mockVacancySource{}
	analyzer := &mockAnalyzer{}

	source.On("ResolveAreaID", mock.Anything, mock.Anything).Return("1", nil)
	source.On("GetVacancies", mock.Anything, mock.Anything).
		Return([]hh.VacancyPreview{preview("1", fixedNow), preview("2", fixedNow)}, 1, nil)
	source.On("GetVacancy", mock.Anything, mock.Anything).Return(vacancy("1", "<p>Go</p>"), nil)
	analyzer.On("Analyze", mock.Anything, mock.Anything).Return(nil, ErrNoResume)

	watcher := newTestWatcher(t, source, analyzer, s)
	analyzed, err := watcher.RunOnce(context.Background())

	assert.ErrorIs(t, err, ErrNoResume)
	assert.Equal(t, 0, analyzed)
	analyzer.AssertNumberOfCalls(t, "Analyze", 1)
}

func Test_VacanciesWatcher_FetchesFollowingPages(t *testing.T) {
	s := newStores(t)
	source := &mockVacancySource{}
	analyzer := &mockAnalyzer{}

	source.On("ResolveAreaID", mock.Anything, mock.Anything).Return("1", nil)
	source.On("GetVacancies", mock.Anything, mock.MatchedBy(func(p hh.SearchParameters) bool { return p.Page == 0 })).
		Return([]hh.VacancyPreview{preview("1", fixedNow)}, 2, nil)
	source.On("GetVacancies", mock.Anything, mock.MatchedBy(func(p hh.SearchParameters) bool { return p.Page == 1 })).
		Return([]hh.VacancyPreview{preview("2", fixedNow)}, 2, nil)
	source.On("GetVacancy", mock.Anything, "1").Return(vacancy("1", "<p>Go</p>"), nil)
	source.On("GetVacancy", mock.Anything, "2").Return(vacancy("2", "<p>Rust</p>"), nil)
	analyzer.On("Analyze", mock.Anything, mock.Anything).Return(&models.AnalysisResult{}, nil)

	watcher := newTestWatcher(t, source, analyzer, s)
	analyzed, err := watcher.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, analyzed)
	source.AssertNumberOfCalls(t, "GetVacancies", 2)
}
