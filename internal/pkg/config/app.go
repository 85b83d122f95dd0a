// Package config loads the application configuration from an optional YAML
// file with environment variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "blog-backend/pkg/config"
)

// AppConfig holds the full application configuration.
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	Images ImageConfig  `yaml:"images"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`

	RateLimit       int           `yaml:"rate_limit"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
}

// CacheConfig configures the listing and statistics caches.
type CacheConfig struct {
	ListTTL       time.Duration `yaml:"list_ttl"`
	DiagnosticTTL time.Duration `yaml:"diagnostic_ttl"`
	StatsTTL      time.Duration `yaml:"stats_ttl"`
}

// ImageConfig configures image upload processing and storage.
type ImageConfig struct {
	Dir          string `yaml:"dir"`
	MaxDimension int    `yaml:"max_dimension"`
	Quality      int    `yaml:"quality"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    20 << 20,
			RateLimit:       100,
			RateLimitWindow: time.Minute,
		},
		Cache: CacheConfig{
			ListTTL:       60 * time.Second,
			DiagnosticTTL: 5 * time.Second,
			StatsTTL:      60 * time.Second,
		},
		Images: ImageConfig{
			Dir:          "storage/images",
			MaxDimension: 1200,
			Quality:      80,
		},
	}
}

// Load builds the application configuration: defaults, then the YAML file
// named by CONFIG_FILE (if any), then environment overrides. A missing file
// is not an error; a malformed one is.
func Load() (AppConfig, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env overrides
		case err != nil:
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	c.Server.Addr = pkgconfig.GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.RequestTimeout = pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.RateLimit = pkgconfig.GetEnvInt("RATE_LIMIT", c.Server.RateLimit)
	c.Server.RateLimitWindow = pkgconfig.GetEnvDuration("RATE_LIMIT_WINDOW", c.Server.RateLimitWindow)

	c.Cache.ListTTL = pkgconfig.GetEnvDuration("CACHE_LIST_TTL", c.Cache.ListTTL)
	c.Cache.DiagnosticTTL = pkgconfig.GetEnvDuration("CACHE_DIAGNOSTIC_TTL", c.Cache.DiagnosticTTL)
	c.Cache.StatsTTL = pkgconfig.GetEnvDuration("CACHE_STATS_TTL", c.Cache.StatsTTL)

	c.Images.Dir = pkgconfig.GetEnvString("IMAGE_DIR", c.Images.Dir)
	c.Images.MaxDimension = pkgconfig.GetEnvInt("IMAGE_MAX_DIMENSION", c.Images.MaxDimension)
	c.Images.Quality = pkgconfig.GetEnvInt("IMAGE_QUALITY", c.Images.Quality)
}

func (c *AppConfig) validate() error {
	if err := pkgconfig.ValidatePositiveDuration(c.Cache.ListTTL); err != nil {
		return fmt.Errorf("cache.list_ttl: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Cache.DiagnosticTTL); err != nil {
		return fmt.Errorf("cache.diagnostic_ttl: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Cache.StatsTTL); err != nil {
		return fmt.Errorf("cache.stats_ttl: %w", err)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive, got %d", c.Server.RateLimit)
	}
	if err := pkgconfig.ValidateDurationRange(c.Server.RateLimitWindow, time.Second, time.Hour); err != nil {
		return fmt.Errorf("server.rate_limit_window: %w", err)
	}
	if c.Images.Quality < 1 || c.Images.Quality > 100 {
		return fmt.Errorf("images.quality must be in [1,100], got %d", c.Images.Quality)
	}
	if c.Images.MaxDimension <= 0 {
		return fmt.Errorf("images.max_dimension must be positive, got %d", c.Images.MaxDimension)
	}
	return nil
}
