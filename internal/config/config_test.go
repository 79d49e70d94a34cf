package config_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/msomdec/resume-api/internal/config"
)

var testSecret = strings.Repeat("s", 32)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range []string{"SERVER_PORT", "ACCESS_TOKEN_SECRET", "DATABASE_PATH", "BCRYPT_COST", "LOG_LEVEL"} {
		t.Setenv(key, vars[key])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"ACCESS_TOKEN_SECRET": testSecret})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "resumes.db" {
		t.Errorf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"SERVER_PORT":         "8081",
		"ACCESS_TOKEN_SECRET": testSecret,
		"DATABASE_PATH":       "/tmp/other.db",
		"BCRYPT_COST":         "12",
		"LOG_LEVEL":           "debug",
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8081" || cfg.DatabasePath != "/tmp/other.db" || cfg.BcryptCost != 12 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"ACCESS_TOKEN_SECRET": "too-short"}},
		{"non-numeric cost", map[string]string{"ACCESS_TOKEN_SECRET": testSecret, "BCRYPT_COST": "ten"}},
		{"cost too high", map[string]string{"ACCESS_TOKEN_SECRET": testSecret, "BCRYPT_COST": "20"}},
		{"bad log level", map[string]string{"ACCESS_TOKEN_SECRET": testSecret, "LOG_LEVEL": "loud"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t, tc.vars)
			if _, err := config.Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
