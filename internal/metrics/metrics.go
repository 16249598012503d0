package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobfit_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	AnalysesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobfit_analyses_total",
			Help: "Total number of analyzed jobs by recommendation.",
		},
		[]string{"recommendation"},
	)
	MatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobfit_match_score",
			Help:    "Distribution of match scores.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)
	AnalysisStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "jobfit_analysis_duration_seconds",
			Help:       "Duration of each step in the job analysis process.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	ResumesParsedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobfit_resumes_parsed_total",
			Help: "Total number of parsed resumes.",
		},
	)
	JobsRemovedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobfit_jobs_removed_total",
			Help: "Total number of analyzed jobs removed by retention.",
		},
	)
)

func Register(registerer prometheus.Registerer) {
	registerer.MustRegister(
		ErrorsCounter,
		AnalysesCounter,
		MatchScore,
		AnalysisStepDuration,
		ResumesParsedCounter,
		JobsRemovedCounter,
	)
}

func StartMetricsServer(address string) {
	Register(prometheus.DefaultRegisterer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, mux))
	}()
	log.Infof("metrics are served at %s/metrics", address)
}
