package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. FITCIRCLE_LOG_LEVEL overrides log.level.
const EnvPrefix = "FITCIRCLE"

// Default values applied before config files and environment variables.
const (
	DefaultLogLevel   = "info"
	DefaultBcryptCost = 10
	DefaultTimeLayout = "2006/1/2 15:04:05"
	DefaultPlanPrompt = "Please enter your goal (Muscle Gain/Fat Loss/Maintain the Current State): "
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
//
// Config files named config.yaml are searched for in the given paths in order;
// a missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("display.time_layout", DefaultTimeLayout)
	v.SetDefault("plan.prompt", DefaultPlanPrompt)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
