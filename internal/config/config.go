package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the binary needs wired. Values come from built-in
// defaults, then the optional YAML file, then environment variables, later
// layers overriding earlier ones.
type Config struct {
	BindAddr    string
	DatabaseDSN string

	// FetchTimeout bounds a single page fetch; RunDeadline caps the whole
	// adapter fan-out for one aggregation; RenderWait is how long the
	// browser-backed adapter lets dynamic content settle.
	FetchTimeout time.Duration
	RunDeadline  time.Duration
	RenderWait   time.Duration

	// Per-source base URLs so tests and staging can point adapters at
	// fixture servers.
	MakaliusBaseURL string
	AirGuruBaseURL  string
	TezTourBaseURL  string
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	BindAddr string `yaml:"bind_addr"`
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Scrape struct {
		FetchTimeout string `yaml:"fetch_timeout"`
		RunDeadline  string `yaml:"run_deadline"`
		RenderWait   string `yaml:"render_wait"`
		Makalius     string `yaml:"makalius_base_url"`
		AirGuru      string `yaml:"airguru_base_url"`
		TezTour      string `yaml:"teztour_base_url"`
	} `yaml:"scrape"`
}

// Load builds the configuration. The config file path comes from
// TRIPOFFERS_CONFIG and defaults to config.yaml; a missing file is not an
// error, a malformed one is.
func Load() (*Config, error) {
	cfg := &Config{
		BindAddr:        "0.0.0.0:8080",
		DatabaseDSN:     "offers.db",
		FetchTimeout:    10 * time.Second,
		RunDeadline:     90 * time.Second,
		RenderWait:      5 * time.Second,
		MakaliusBaseURL: "https://www.makalius.lt",
		AirGuruBaseURL:  "https://airguru.lt",
		TezTourBaseURL:  "https://www.teztour.lt",
	}

	if err := applyFile(cfg, getEnv("TRIPOFFERS_CONFIG", "config.yaml")); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive")
	}
	if cfg.RunDeadline <= 0 {
		return nil, fmt.Errorf("run deadline must be positive")
	}
	if cfg.RenderWait <= 0 {
		return nil, fmt.Errorf("render wait must be positive")
	}
	if cfg.RunDeadline < cfg.FetchTimeout {
		return nil, fmt.Errorf("run deadline cannot be shorter than the fetch timeout")
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.BindAddr, fc.BindAddr)
	setString(&cfg.DatabaseDSN, fc.Database.DSN)
	setString(&cfg.MakaliusBaseURL, fc.Scrape.Makalius)
	setString(&cfg.AirGuruBaseURL, fc.Scrape.AirGuru)
	setString(&cfg.TezTourBaseURL, fc.Scrape.TezTour)
	if err := setDuration(&cfg.FetchTimeout, fc.Scrape.FetchTimeout); err != nil {
		return fmt.Errorf("config file fetch_timeout: %w", err)
	}
	if err := setDuration(&cfg.RunDeadline, fc.Scrape.RunDeadline); err != nil {
		return fmt.Errorf("config file run_deadline: %w", err)
	}
	if err := setDuration(&cfg.RenderWait, fc.Scrape.RenderWait); err != nil {
		return fmt.Errorf("config file render_wait: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.BindAddr = getEnv("BIND_ADDR", cfg.BindAddr)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.FetchTimeout = getDuration("FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.RunDeadline = getDuration("RUN_DEADLINE", cfg.RunDeadline)
	cfg.RenderWait = getDuration("RENDER_WAIT", cfg.RenderWait)
	cfg.MakaliusBaseURL = getEnv("MAKALIUS_BASE_URL", cfg.MakaliusBaseURL)
	cfg.AirGuruBaseURL = getEnv("AIRGURU_BASE_URL", cfg.AirGuruBaseURL)
	cfg.TezTourBaseURL = getEnv("TEZTOUR_BASE_URL", cfg.TezTourBaseURL)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, raw string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
