package config

import (
	"strings"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/spf13/viper"
)

// Configuration holds the application configuration.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level"`
}

// NewConfig loads configuration from config/config.yaml and the environment.
// Environment variables use the TOPRENT prefix, e.g. TOPRENT_LOGGING_LEVEL.
func NewConfig() (*Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TOPRENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("deployment.mode", "local")
	v.SetDefault("logging.level", string(types.LogLevelInfo))

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read configuration file").
				Mark(ierr.ErrInternal)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrInternal)
	}
	return &cfg, nil
}

// GetDefaultConfig returns the configuration used when nothing is loaded,
// primarily by tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "local"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
	}
}
