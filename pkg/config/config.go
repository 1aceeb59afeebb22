// Package config holds dashboard configuration: compiled-in defaults layered
// with an optional YAML file. There are no CLI flags and no environment
// variables; the tool is meant to run next to its data folders.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Server defaults
const (
	DefaultAddr        = ":8080"
	DefaultFile        = "dashboard.yaml"
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	ShutdownTimeout    = 30 * time.Second
)

// Pipeline defaults
const (
	DefaultArchiveDir = "csv_files"
	DefaultWorkDir    = "extracted_files"
	DefaultMetric1    = "time_to_takeoff"
	DefaultMetric2    = "mrsi"
)

// Config is the resolved dashboard configuration.
type Config struct {
	Addr       string `koanf:"addr"`
	ArchiveDir string `koanf:"archive_dir"`
	WorkDir    string `koanf:"work_dir"`
	Metric1    string `koanf:"default_metric1"`
	Metric2    string `koanf:"default_metric2"`
}

// New returns the compiled-in defaults.
func New() *Config {
	return &Config{
		Addr:       DefaultAddr,
		ArchiveDir: DefaultArchiveDir,
		WorkDir:    DefaultWorkDir,
		Metric1:    DefaultMetric1,
		Metric2:    DefaultMetric2,
	}
}

// Load builds a Config from defaults plus an optional YAML file. A missing
// file is not an error; a present but malformed file is.
func Load(path string) (*Config, error) {
	cfg := New()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.ArchiveDir == "" || cfg.WorkDir == "" {
		return nil, errors.New("archive_dir and work_dir must not be empty")
	}
	return cfg, nil
}
