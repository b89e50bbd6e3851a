package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/puzzle"
)

// Year 1901 is reserved for the solvers registered by these tests.
const testYear = 1901

func init() {
	puzzle.Register(testYear, 1, func(in string) (puzzle.Answer, error) {
		return puzzle.Answer{Part1: len(in), Part2: strings.ToUpper(in)}, nil
	})
	puzzle.Register(testYear, 2, func(string) (puzzle.Answer, error) {
		return puzzle.Answer{}, puzzle.Malformed("always")
	})
}

// env isolates configuration from the developer's machine.
func env(t *testing.T) string {
	t.Helper()
	for _, k := range []string{config.EnvSession, config.EnvCacheDir, config.EnvInputDir, config.EnvBaseURL, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv(config.EnvCacheDir, filepath.Join(dir, "cache"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cache"), 0o755))
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_InputFlag(t *testing.T) {
	dir := env(t)
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("abc\n"), 0o644))

	out, err := execute(t, "", "--config", filepath.Join(dir, "c.yaml"), "run", "1901", "1", "--input", in)
	require.NoError(t, err)
	assert.Contains(t, out, "1901/01")
	assert.Contains(t, out, "part 1: 3 ")
	assert.Contains(t, out, "part 2: ABC ")
}

func TestRun_PartFilterAndInputDir(t *testing.T) {
	dir := env(t)
	t.Setenv(config.EnvInputDir, dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "1901"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1901", "1.txt"), []byte("xy"), 0o644))

	out, err := execute(t, "", "--config", filepath.Join(dir, "c.yaml"), "run", "1901", "1", "-p", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "part 1")
	assert.Contains(t, out, "part 2: XY ")
}

func TestRun_Errors(t *testing.T) {
	dir := env(t)
	cfg := filepath.Join(dir, "c.yaml")
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	_, err := execute(t, "", "--config", cfg, "run", "1901", "2", "--input", in)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = execute(t, "", "--config", cfg, "run", "1901", "9", "--input", in)
	assert.ErrorIs(t, err, puzzle.ErrUnknownPuzzle)

	_, err = execute(t, "", "--config", cfg, "run", "1901", "1", "--part", "3")
	assert.Error(t, err)

	_, err = execute(t, "", "--config", cfg, "run", "nope")
	assert.Error(t, err)
}

func TestRun_FetchesWithSession(t *testing.T) {
	dir := env(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value != "secret" || r.URL.Path != "/1901/day/1/input" {
			http.Error(w, "no", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("hello\n"))
	}))
	defer srv.Close()
	t.Setenv(config.EnvBaseURL, srv.URL)
	t.Setenv(config.EnvSession, "secret")

	out, err := execute(t, "", "--config", filepath.Join(dir, "c.yaml"), "run", "1901", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "part 1: 5 ")

	out, err = execute(t, "", "--config", filepath.Join(dir, "c.yaml"), "fetch", "1901", "1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cache", "1901_1.txt"), strings.TrimSpace(out))
}

func TestList(t *testing.T) {
	dir := env(t)
	out, err := execute(t, "", "--config", filepath.Join(dir, "c.yaml"), "list", "1901")
	require.NoError(t, err)
	assert.Equal(t, "1901: 1 2\n", out)

	_, err = execute(t, "", "--config", filepath.Join(dir, "c.yaml"), "list", "1902")
	assert.ErrorIs(t, err, puzzle.ErrUnknownPuzzle)
}

func TestSessionSet(t *testing.T) {
	dir := env(t)
	t.Setenv(config.EnvInputDir, "not-persisted")
	path := filepath.Join(dir, "aoc", "config.yaml")

	_, err := execute(t, "  cookie-value \n", "--config", path, "session", "set")
	require.NoError(t, err)

	got, err := config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{Session: "cookie-value"}, got)

	_, err = execute(t, "\n", "--config", path, "session", "set")
	assert.Error(t, err)
}
