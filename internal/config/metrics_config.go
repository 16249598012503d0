package config

import "github.com/spf13/viper"

type MetricsConfig struct {
	Address string `mapstructure:"address" validate:"required,hostname_port"`
}

func (config MetricsConfig) validate() error {
	return validate.Struct(config)
}

func (config MetricsConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("metrics.address", "METRICS_ADDRESS")
}
