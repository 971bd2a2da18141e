// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"PORTFOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	ServerHost string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`

	// HTTP configuration
	CORSOrigins    []string      `env:"PORTFOLIO_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"` // Front-end origins allowed to call the API
	RateLimitRPS   float64       `env:"PORTFOLIO_RATE_LIMIT_RPS" envDefault:"10"`                                     // Requests per second per client IP
	RateLimitBurst int           `env:"PORTFOLIO_RATE_LIMIT_BURST" envDefault:"20"`                                   // Burst size per client IP
	RequestTimeout time.Duration `env:"PORTFOLIO_REQUEST_TIMEOUT" envDefault:"15s"`                                   // Per-request deadline

	// Maintenance configuration
	MaintenanceSchedule string `env:"PORTFOLIO_MAINTENANCE_SCHEDULE" envDefault:"@daily"` // Cron spec for database housekeeping

	// Seeding configuration
	DoSeed bool `env:"PORTFOLIO_DO_SEED" envDefault:"false"` // Seed default header and introduction
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validEnvs = map[string]bool{"development": true, "production": true}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// RateLimitEnabled returns true if API rate limiting is configured.
func (c Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("PORTFOLIO_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("PORTFOLIO_ENV must be development or production; got %q", c.Env)
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("PORTFOLIO_SERVER_PORT must be between 1 and 65535; got %d", c.ServerPort)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("PORTFOLIO_RATE_LIMIT_RPS and PORTFOLIO_RATE_LIMIT_BURST must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("PORTFOLIO_REQUEST_TIMEOUT must be positive; got %s", c.RequestTimeout)
	}
	if _, err := cron.ParseStandard(c.MaintenanceSchedule); err != nil {
		return fmt.Errorf("PORTFOLIO_MAINTENANCE_SCHEDULE is not a valid cron spec: %w", err)
	}
	return nil
}
