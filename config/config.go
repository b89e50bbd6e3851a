// Package config loads the aoc command's settings from a YAML file, an
// optional .env file and AOC_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names that override file settings.
const (
	EnvSession  = "AOC_SESSION"
	EnvCacheDir = "AOC_CACHE_DIR"
	EnvInputDir = "AOC_INPUT_DIR"
	EnvBaseURL  = "AOC_BASE_URL"
	EnvLogLevel = "AOC_LOG_LEVEL"
)

// ErrInvalidConfig indicates a config file that exists but cannot be decoded.
var ErrInvalidConfig = errors.New("config: invalid config file")

// Config holds the command's settings.
type Config struct {
	// Session is the adventofcode.com session cookie value.
	Session string `yaml:"session,omitempty"`
	// CacheDir holds downloaded inputs as <year>_<day>.txt.
	CacheDir string `yaml:"cache_dir,omitempty"`
	// InputDir, if set, is searched for <year>/<day>.txt before fetching.
	InputDir string `yaml:"input_dir,omitempty"`
	// BaseURL is the site root inputs are fetched from.
	BaseURL string `yaml:"base_url,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CacheDir: os.TempDir(),
		BaseURL:  "https://adventofcode.com",
		LogLevel: "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/aoc/config.yaml, or the platform
// equivalent from os.UserConfigDir.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return filepath.Join(".", "aoc.yaml")
		}
		dir = d
	}
	return filepath.Join(dir, "aoc", "config.yaml")
}

// Load reads path (a missing file is not an error), then .env from the
// working directory, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	fileCfg, err := ReadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg.merge(fileCfg)

	// .env never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: loading .env: %w", err)
	}
	cfg.merge(FromEnv())
	return cfg, nil
}

// ReadFile returns only the settings stored in path, without defaults or
// environment overrides. A missing file yields the zero Config.
func ReadFile(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return c, nil
}

// FromEnv returns the settings present in AOC_* environment variables.
func FromEnv() Config {
	return Config{
		Session:  strings.TrimSpace(os.Getenv(EnvSession)),
		CacheDir: os.Getenv(EnvCacheDir),
		InputDir: os.Getenv(EnvInputDir),
		BaseURL:  os.Getenv(EnvBaseURL),
		LogLevel: os.Getenv(EnvLogLevel),
	}
}

// merge copies every non-empty field of o into c.
func (c *Config) merge(o Config) {
	if o.Session != "" {
		c.Session = o.Session
	}
	if o.CacheDir != "" {
		c.CacheDir = o.CacheDir
	}
	if o.InputDir != "" {
		c.InputDir = o.InputDir
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Save writes c to path as YAML, creating parent directories. The file is
// private to the user since it holds the session cookie.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Level converts LogLevel to a slog.Level, defaulting to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
