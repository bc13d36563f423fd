package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// LogConfig drives logging.Init. Logs go to stderr; File adds a copy on
// disk that rolls over at MaxMB.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	File        string `env:"LOG_FILE"`
	MaxMB       int    `env:"LOG_MAX_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c LogConfig) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.Level))); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("LOG_SAMPLE_EVERY must not be negative, got %d", c.SampleEvery)
	}
	if strings.TrimSpace(c.File) != "" && c.MaxMB <= 0 {
		return fmt.Errorf("LOG_MAX_MB must be positive when LOG_FILE is set, got %d", c.MaxMB)
	}
	return nil
}
