// Package config loads daybook configuration from a TOML file with
// environment-variable overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigFileName is the config file created on first run.
	DefaultConfigFileName = "config.toml"
	// DefaultStateFileName is the SQLite database holding state and blobs.
	DefaultStateFileName = "daybook.db"
)

// Config holds application configuration.
type Config struct {
	// StatePath is the SQLite database path for state and blobs.
	StatePath string `toml:"state_path"`
	// FlushQuietPeriod is the write-behind debounce window.
	FlushQuietPeriod time.Duration `toml:"flush_quiet_period"`
	// DefaultView is the task view used when none is given (all, today,
	// overdue, week, nodate).
	DefaultView string `toml:"default_view"`
	// LogLevel sets logging verbosity (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	Pomodoro PomodoroConfig `toml:"pomodoro"`
}

// PomodoroConfig tunes the focus timer.
type PomodoroConfig struct {
	WorkDuration  time.Duration `toml:"work_duration"`
	BreakDuration time.Duration `toml:"break_duration"`
}

// Default returns the default configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		StatePath:        filepath.Join(dir, DefaultStateFileName),
		FlushQuietPeriod: 300 * time.Millisecond,
		DefaultView:      "all",
		LogLevel:         "warn",
		Pomodoro: PomodoroConfig{
			WorkDuration:  25 * time.Minute,
			BreakDuration: 5 * time.Minute,
		},
	}
}

// DefaultDir returns the per-user daybook directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daybook"
	}
	return filepath.Join(home, ".daybook")
}

// LoadOrCreate reads the config file at path, writing defaults on first run,
// then applies environment overrides. A .env file next to the working
// directory is honored when present.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.StatePath == "" {
		cfg.StatePath = filepath.Join(filepath.Dir(path), DefaultStateFileName)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.StatePath = getEnv("DAYBOOK_STATE_PATH", cfg.StatePath)
	cfg.DefaultView = getEnv("DAYBOOK_DEFAULT_VIEW", cfg.DefaultView)
	cfg.LogLevel = getEnv("DAYBOOK_LOG_LEVEL", cfg.LogLevel)
	cfg.FlushQuietPeriod = getDurationEnv("DAYBOOK_FLUSH_QUIET_PERIOD", cfg.FlushQuietPeriod)
	cfg.Pomodoro.WorkDuration = getDurationEnv("DAYBOOK_POMODORO_WORK", cfg.Pomodoro.WorkDuration)
	cfg.Pomodoro.BreakDuration = getDurationEnv("DAYBOOK_POMODORO_BREAK", cfg.Pomodoro.BreakDuration)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
