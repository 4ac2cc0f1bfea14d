package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the CLI configuration, read from the config file and PLANIT_*
// environment variables.
type Config struct {
	APIURL    string        `mapstructure:"api_url" yaml:"api_url" validate:"required,url"`
	StatePath string        `mapstructure:"state_path" yaml:"state_path" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=1s"`
}

// defaultConfigPath is ~/.config/planit/config.yaml, or "" when the user
// config dir is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "planit", "config.yaml")
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "planit.db"
	}
	return filepath.Join(dir, "planit", "state.db")
}

// loadConfig reads path (a missing file is fine), applies PLANIT_* overrides
// and validates the result.
func loadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("state_path", defaultStatePath())
	v.SetDefault("timeout", "30s")

	v.SetEnvPrefix("PLANIT")
	for _, key := range []string{"api_url", "state_path", "timeout"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
