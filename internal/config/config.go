// Package config loads streax settings from STREAX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable name, e.g. STREAX_DB.
const Prefix = "STREAX"

type Config struct {
	// DBPath defaults to ~/.streax/streax.db when empty.
	DBPath   string `envconfig:"DB"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	// LogCalls enables per use-case log lines from the service layer.
	LogCalls bool `envconfig:"LOG_CALLS" default:"false"`

	TimerMaxAge time.Duration `envconfig:"TIMER_MAX_AGE" default:"24h"`

	MorningReminder string `envconfig:"MORNING_REMINDER" default:"0 9 * * *"`
	EveningReminder string `envconfig:"EVENING_REMINDER" default:"0 19 * * *"`

	NotificationLimit int `envconfig:"NOTIFICATION_LIMIT" default:"50"`
}

// Load reads the environment, fills defaults and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".streax", "streax.db")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("STREAX_LOG_LEVEL: %w", err))
	}
	if c.TimerMaxAge <= 0 {
		errs = append(errs, errors.New("STREAX_TIMER_MAX_AGE must be > 0"))
	}
	if c.NotificationLimit <= 0 {
		errs = append(errs, errors.New("STREAX_NOTIFICATION_LIMIT must be > 0"))
	}
	for name, spec := range map[string]string{
		"STREAX_MORNING_REMINDER": c.MorningReminder,
		"STREAX_EVENING_REMINDER": c.EveningReminder,
	} {
		if _, err := cron.ParseStandard(strings.TrimSpace(spec)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Usage renders a table of the supported variables and their defaults.
func Usage() string {
	var b strings.Builder
	_ = envconfig.Usagef(Prefix, &Config{}, &b, envconfig.DefaultTableFormat)
	return b.String()
}
