package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/config"
)

// clearEnv unsets every AOC_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvSession, config.EnvCacheDir, config.EnvInputDir, config.EnvBaseURL, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
}

// chdir switches the working directory so Load sees a controlled .env.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: abc\ninput_dir: /inputs\nlog_level: debug\n"), 0o600))
	t.Setenv(config.EnvSession, "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session)
	assert.Equal(t, "/inputs", cfg.InputDir)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "https://adventofcode.com", cfg.BaseURL)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AOC_CACHE_DIR=/cache\n"), 0o600))
	// t.Setenv("", ...) above leaves AOC_CACHE_DIR set to empty, which godotenv
	// treats as present; unset it so the .env value applies.
	require.NoError(t, os.Unsetenv(config.EnvCacheDir))
	t.Cleanup(func() { os.Unsetenv(config.EnvCacheDir) })

	cfg, err := config.Load(filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/cache", cfg.CacheDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: [unterminated\n"), 0o600))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := config.Default()
	want.Session = "cookie"
	require.NoError(t, config.Save(path, want))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLevel_Fallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, config.Config{LogLevel: "loud"}.Level())
	assert.Equal(t, slog.LevelWarn, config.Config{LogLevel: "warn"}.Level())
}

func TestReadFile_IgnoresEnv(t *testing.T) {
	t.Setenv(config.EnvSession, "from-env")

	dir := t.TempDir()
	got, err := config.ReadFile(filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, got)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: inputs\n"), 0o600))
	got, err = config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{InputDir: "inputs"}, got)
}
