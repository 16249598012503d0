package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	DB       DBConfig       `mapstructure:"db"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Watcher  WatcherConfig  `mapstructure:"watcher"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

const defaultConfigFile = "./configs/config.yaml"

var validate = validator.New()

func Get() *Config {
	configFile := defaultConfigFile
	if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)

	if err := bindEnvironmentVariables(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Config{}
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

type section interface {
	bindEnvironmentVariables(v *viper.Viper) error
}

func bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error

	sections := map[string]section{
		"LoggerConfig":   LoggerConfig{},
		"DBConfig":       DBConfig{},
		"AnalysisConfig": AnalysisConfig{},
		"WatcherConfig":  WatcherConfig{},
		"MetricsConfig":  MetricsConfig{},
	}

	for name, s := range sections {
		if err := s.bindEnvironmentVariables(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.Analysis.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AnalysisConfig: %w", err))
	}

	if err := config.Watcher.validate(); err != nil {
		errs = append(errs, fmt.Errorf("WatcherConfig: %w", err))
	}

	if err := config.Metrics.validate(); err != nil {
		errs = append(errs, fmt.Errorf("MetricsConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func bindAll(v *viper.Viper, bindings map[string]string) error {
	var errs []error
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
