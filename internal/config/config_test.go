package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYaml = `
logger:
  log_level: INFO
  app_name: jobfit
  output_file: ./logs/jobfit.log
db:
  connection_string: ./data/jobfit.db
analysis:
  retention_days: 30
  minimum_match_percentage: 50
  cleanup_cron: "0 3 * * *"
watcher:
  enabled: true
  search_text: golang
  area: "1"
  interval: 1h
  per_page: 50
  max_requests_per_second: 5
metrics:
  address: ":9100"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func Test_LoadConfig_ValidFile_ParsesAllSections(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, validYaml))
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, "./data/jobfit.db", cfg.DB.ConnectionString)
	assert.Equal(t, 30, cfg.Analysis.RetentionDays)
	assert.Equal(t, 50, cfg.Analysis.MinimumMatchPercentage)
	assert.True(t, cfg.Watcher.Enabled)
	assert.Equal(t, time.Hour, cfg.Watcher.Interval)
	assert.Equal(t, 50, cfg.Watcher.PerPage)
	assert.Equal(t, 5.0, cfg.Watcher.MaxRequestsPerSecond)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
}

func Test_LoadConfig_EnvironmentOverride_Wins(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "/tmp/other.db")
	t.Setenv("RESUME_PATH", "/tmp/cv.pdf")
	t.Setenv("RETENTION_DAYS", "7")
	t.Setenv("WATCHER_INTERVAL", "15m")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := loadConfig(writeConfig(t, validYaml))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DB.ConnectionString)
	assert.Equal(t, "/tmp/cv.pdf", cfg.Analysis.ResumePath)
	assert.Equal(t, 7, cfg.Analysis.RetentionDays)
	assert.Equal(t, 15*time.Minute, cfg.Watcher.Interval)
	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
}

func Test_LoadConfig_MissingFile_ReturnsError(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func Test_AnalysisConfig_InvalidValues_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		config AnalysisConfig
	}{
		{"zero retention", AnalysisConfig{RetentionDays: 0, MinimumMatchPercentage: 50, CleanupCron: "0 3 * * *"}},
		{"percentage above 100", AnalysisConfig{RetentionDays: 1, MinimumMatchPercentage: 101, CleanupCron: "0 3 * * *"}},
		{"bad cron", AnalysisConfig{RetentionDays: 1, MinimumMatchPercentage: 50, CleanupCron: "every day"}},
		{"missing cron", AnalysisConfig{RetentionDays: 1, MinimumMatchPercentage: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.config.validate())
		})
	}
}

func Test_WatcherConfig_Disabled_SkipsValidation(t *testing.T) {
	assert.NoError(t, WatcherConfig{}.validate())
}

func Test_WatcherConfig_EnabledWithoutSearchText_Rejected(t *testing.T) {
	cfg := WatcherConfig{Enabled: true, Interval: time.Hour, PerPage: 20, MaxRequestsPerSecond: 1}
	assert.Error(t, cfg.validate())

	cfg.SearchText = "go"
	assert.NoError(t, cfg.validate())
}

func Test_LoggerConfig_UnknownLevel_Rejected(t *testing.T) {
	cfg := LoggerConfig{LogLevel: "TRACE", OutputFile: "out.log"}
	assert.Error(t, cfg.validate())
}

func Test_LoggerConfig_LokiWithoutAppName_Rejected(t *testing.T) {
	cfg := LoggerConfig{LogLevel: LevelInfo, OutputFile: "out.log", LokiURL: "http://loki:3100"}
	assert.Error(t, cfg.validate())
}
