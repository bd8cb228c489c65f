package main

import (
	"github.com/kelseyhightower/envconfig"
	"go-ml.dev/pkg/learntools/lessons/featureengineering"
	"go-ml.dev/pkg/zorros"
	"path/filepath"
)

// Config is read from LEARNTOOLS_* environment variables
type Config struct {
	DataDir       string  `envconfig:"DATA_DIR"`
	ClicksFile    string  `envconfig:"CLICKS_FILE" default:"feature-engineering-data/baseline_data.csv"`
	ClicksTable   string  `envconfig:"CLICKS_TABLE" default:"clicks"`
	ValidFraction float64 `envconfig:"VALID_FRACTION" default:"0.1"`
	Tolerance     float64 `envconfig:"TOLERANCE" default:"1e-9"`
	Verbose       bool    `envconfig:"VERBOSE" default:"false"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("learntools", &cfg)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to load config from env: %v", err.Error())
	}
	if cfg.ValidFraction <= 0 || cfg.ValidFraction >= 0.5 {
		return nil, zorros.Errorf("LEARNTOOLS_VALID_FRACTION must be in (0, 0.5), got %v", cfg.ValidFraction)
	}
	if cfg.Tolerance < 0 {
		return nil, zorros.Errorf("LEARNTOOLS_TOLERANCE must not be negative, got %v", cfg.Tolerance)
	}
	if cfg.DataDir != "" {
		if cfg.DataDir, err = filepath.Abs(cfg.DataDir); err != nil {
			return nil, zorros.Wrapf(err, "bad LEARNTOOLS_DATA_DIR: %v", err.Error())
		}
	}
	return &cfg, nil
}

// DataFile returns the clicks dataset path, relative to DataDir when it is set.
// DataDir is absolute after LoadConfig, a relative path without it resolves in the datasets cache
func (c *Config) DataFile() string {
	if c.DataDir != "" && !filepath.IsAbs(c.ClicksFile) {
		return filepath.Join(c.DataDir, c.ClicksFile)
	}
	return c.ClicksFile
}

// Lesson returns the feature engineering lesson setup configuration
func (c *Config) Lesson(verbose func(string)) featureengineering.Config {
	tol := c.Tolerance
	lc := featureengineering.Config{
		DataFile:      c.DataFile(),
		Table:         c.ClicksTable,
		ValidFraction: c.ValidFraction,
		Tolerance:     &tol,
	}
	if c.Verbose {
		lc.Verbose = verbose
	}
	return lc
}
