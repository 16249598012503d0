package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// WatcherConfig drives periodic HeadHunter polling.
type WatcherConfig struct {
	Enabled              bool          `mapstructure:"enabled"`
	SearchText           string        `mapstructure:"search_text"`
	Area                 string        `mapstructure:"area"`
	Interval             time.Duration `mapstructure:"interval" validate:"gte=1s"`
	PerPage              int           `mapstructure:"per_page" validate:"gte=1,lte=100"`
	MaxRequestsPerSecond float64       `mapstructure:"max_requests_per_second" validate:"gt=0"`
}

func (config WatcherConfig) validate() error {
	if !config.Enabled {
		return nil
	}

	var errs []error
	if err := validate.Struct(config); err != nil {
		errs = append(errs, err)
	}
	if config.SearchText == "" {
		errs = append(errs, fmt.Errorf("missing variable: search_text"))
	}

	return errors.Join(errs...)
}

func (config WatcherConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"watcher.enabled":                 "WATCHER_ENABLED",
		"watcher.search_text":             "WATCHER_SEARCH_TEXT",
		"watcher.area":                    "WATCHER_AREA",
		"watcher.interval":                "WATCHER_INTERVAL",
		"watcher.per_page":                "WATCHER_PER_PAGE",
		"watcher.max_requests_per_second": "HH_MAX_REQUESTS_PER_SECOND",
	})
}
