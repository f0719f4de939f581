package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings for the time card.
type Config struct {
	DBPath          string
	LogEvents       bool
	LogLevel        slog.Level
	ClipboardMode   string
	RefreshInterval time.Duration
	RolloverCheck   time.Duration
}

// DefaultConfig returns the settings used when no environment overrides
// are present. The database lives under the user's home directory.
func DefaultConfig() Config {
	return Config{
		DBPath:          "",
		LogEvents:       false,
		LogLevel:        slog.LevelInfo,
		ClipboardMode:   "auto",
		RefreshInterval: time.Second,
		RolloverCheck:   time.Minute,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or invalid values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("TIMECARD_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".timecard", "timecard.db")
	}

	if v := os.Getenv("TIMECARD_LOG"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TIMECARD_LOG_LEVEL"); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("TIMECARD_CLIPBOARD"); v != "" {
		cfg.ClipboardMode = v
	}
	applyDurationEnv(&cfg.RefreshInterval, "TIMECARD_REFRESH_MS")
	applyDurationEnv(&cfg.RolloverCheck, "TIMECARD_ROLLOVER_MS")

	return cfg, nil
}

func parseLevel(v string) (slog.Level, bool) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

func applyDurationEnv(dst *time.Duration, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = time.Duration(n) * time.Millisecond
}
