package config

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type AnalysisConfig struct {
	// ResumePath is uploaded on startup when set.
	ResumePath             string `mapstructure:"resume_path"`
	RetentionDays          int    `mapstructure:"retention_days" validate:"gte=1"`
	MinimumMatchPercentage int    `mapstructure:"minimum_match_percentage" validate:"gte=0,lte=100"`
	CleanupCron            string `mapstructure:"cleanup_cron" validate:"required"`
}

func (config AnalysisConfig) validate() error {
	var errs []error

	if err := validate.Struct(config); err != nil {
		errs = append(errs, err)
	}
	if config.CleanupCron != "" {
		if _, err := cron.ParseStandard(config.CleanupCron); err != nil {
			errs = append(errs, fmt.Errorf("invalid cleanup_cron: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (config AnalysisConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"analysis.resume_path":              "RESUME_PATH",
		"analysis.retention_days":           "RETENTION_DAYS",
		"analysis.minimum_match_percentage": "MINIMUM_MATCH_PERCENTAGE",
		"analysis.cleanup_cron":             "CLEANUP_CRON",
	})
}
