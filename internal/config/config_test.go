// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/portfolio.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/portfolio.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v, want [http://localhost:3000]", cfg.CORSOrigins)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %s, want 15s", cfg.RequestTimeout)
	}
	if cfg.MaintenanceSchedule != "@daily" {
		t.Errorf("MaintenanceSchedule = %q, want @daily", cfg.MaintenanceSchedule)
	}
	if cfg.DoSeed {
		t.Error("DoSeed = true, want false")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "PORTFOLIO_DB_PATH", "/custom/path.db")
	setEnv(t, "PORTFOLIO_SERVER_HOST", "0.0.0.0")
	setEnv(t, "PORTFOLIO_SERVER_PORT", "3000")
	setEnv(t, "PORTFOLIO_ENV", "production")
	setEnv(t, "PORTFOLIO_LOG_LEVEL", "debug")
	setEnv(t, "PORTFOLIO_CORS_ORIGINS", "https://me.dev,https://www.me.dev")
	setEnv(t, "PORTFOLIO_RATE_LIMIT_RPS", "2.5")
	setEnv(t, "PORTFOLIO_REQUEST_TIMEOUT", "3s")
	setEnv(t, "PORTFOLIO_MAINTENANCE_SCHEDULE", "30 3 * * *")
	setEnv(t, "PORTFOLIO_DO_SEED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/custom/path.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/custom/path.db")
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://www.me.dev" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %s, want 3s", cfg.RequestTimeout)
	}
	if !cfg.DoSeed {
		t.Error("DoSeed = false, want true")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log level", "PORTFOLIO_LOG_LEVEL", "verbose"},
		{"env", "PORTFOLIO_ENV", "staging"},
		{"port zero", "PORTFOLIO_SERVER_PORT", "0"},
		{"port too large", "PORTFOLIO_SERVER_PORT", "70000"},
		{"port not a number", "PORTFOLIO_SERVER_PORT", "http"},
		{"negative rps", "PORTFOLIO_RATE_LIMIT_RPS", "-1"},
		{"zero timeout", "PORTFOLIO_REQUEST_TIMEOUT", "0s"},
		{"bad schedule", "PORTFOLIO_MAINTENANCE_SCHEDULE", "every day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() should fail with %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_RateLimitEnabled(t *testing.T) {
	if (Config{RateLimitRPS: 0}).RateLimitEnabled() {
		t.Error("RateLimitEnabled() = true for 0 rps")
	}
	if !(Config{RateLimitRPS: 1}).RateLimitEnabled() {
		t.Error("RateLimitEnabled() = false for 1 rps")
	}
}
