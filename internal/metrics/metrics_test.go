package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Register_ExposesAllCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	Register(registry)

	AnalysesCounter.WithLabelValues("apply").Inc()
	ErrorsCounter.WithLabelValues("db").Inc()
	MatchScore.Observe(87)
	AnalysisStepDuration.WithLabelValues("scoring").Observe(0.01)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Subset(t, names, []string{
		"jobfit_errors_total",
		"jobfit_analyses_total",
		"jobfit_match_score",
		"jobfit_analysis_duration_seconds",
		"jobfit_resumes_parsed_total",
		"jobfit_jobs_removed_total",
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(AnalysesCounter.WithLabelValues("apply")))
}
