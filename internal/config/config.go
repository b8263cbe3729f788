// Package config reads viewer settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable name, e.g. GIFVIEW_LOG_LEVEL.
const Prefix = "gifview"

type env struct {
	LogLevel        string `envconfig:"LOG_LEVEL" default:"warn"`
	ResetDragOnBlur bool   `envconfig:"RESET_DRAG_ON_BLUR" default:"false"`
	Background      string `envconfig:"BACKGROUND" default:"#000000"`
	Debug           bool   `envconfig:"DEBUG" default:"false"`
}

// Config holds the parsed settings.
type Config struct {
	LogLevel logrus.Level
	// ResetDragOnBlur ends a drag when the window loses focus.
	ResetDragOnBlur bool
	Background      colorful.Color
	// Debug draws the viewer state over the image.
	Debug bool
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	var e env
	if err := envconfig.Process(Prefix, &e); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	level, err := logrus.ParseLevel(e.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	bg, err := colorful.Hex(e.Background)
	if err != nil {
		return nil, fmt.Errorf("parsing background %q: %w", e.Background, err)
	}

	return &Config{
		LogLevel:        level,
		ResetDragOnBlur: e.ResetDragOnBlur,
		Background:      bg,
		Debug:           e.Debug,
	}, nil
}

// NewLogger returns a logger writing text lines to stderr at the configured
// level.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return log
}
