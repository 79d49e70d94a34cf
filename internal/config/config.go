package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const minSecretLength = 32

// Config holds process settings read from the environment.
type Config struct {
	Port              string
	AccessTokenSecret string
	DatabasePath      string
	BcryptCost        int
	LogLevel          slog.Level
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:              envOrDefault("SERVER_PORT", "3000"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		DatabasePath:      envOrDefault("DATABASE_PATH", "resumes.db"),
		BcryptCost:        10,
		LogLevel:          slog.LevelInfo,
	}

	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET environment variable is required")
	}
	if len(cfg.AccessTokenSecret) < minSecretLength {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be at least %d characters for HMAC-SHA256 security", minSecretLength)
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
