package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Sentinel errors for fetch operations.
var (
	// ErrNoSession indicates that no session cookie is configured.
	ErrNoSession = errors.New("input: no session cookie configured")

	// ErrFetch indicates that downloading an input failed.
	ErrFetch = errors.New("input: fetch failed")
)

// DefaultBaseURL is the Advent of Code site.
const DefaultBaseURL = "https://adventofcode.com"

// Fetcher downloads puzzle inputs and caches them on disk.
// The zero value is not usable; build one with NewFetcher.
type Fetcher struct {
	BaseURL  string
	Session  string
	CacheDir string
	Client   *http.Client
	Logger   *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithBaseURL overrides the site root (used by tests).
func WithBaseURL(u string) FetcherOption {
	return func(f *Fetcher) {
		if u != "" {
			f.BaseURL = u
		}
	}
}

// WithCacheDir overrides the cache directory (defaults to os.TempDir).
func WithCacheDir(dir string) FetcherOption {
	return func(f *Fetcher) {
		if dir != "" {
			f.CacheDir = dir
		}
	}
}

// WithClient sets the HTTP client.
func WithClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if c != nil {
			f.Client = c
		}
	}
}

// WithLogger sets the logger for cache and download events.
func WithLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if l != nil {
			f.Logger = l
		}
	}
}

// NewFetcher returns a Fetcher authenticating with session.
func NewFetcher(session string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		BaseURL:  DefaultBaseURL,
		Session:  session,
		CacheDir: os.TempDir(),
		Client:   &http.Client{Timeout: 30 * time.Second},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the input URL for year/day.
func (f *Fetcher) URL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.BaseURL, year, day)
}

// Path returns the cache location for year/day.
func (f *Fetcher) Path(year, day int) string {
	return filepath.Join(f.CacheDir, fmt.Sprintf("%d_%d.txt", year, day))
}

// Fetch returns the cached input path for year/day, downloading it first if
// it is not cached yet. downloaded reports whether a request was made.
func (f *Fetcher) Fetch(ctx context.Context, year, day int) (path string, downloaded bool, err error) {
	path = f.Path(year, day)
	if Exists(path) {
		f.Logger.Debug("input cache hit", "year", year, "day", day, "path", path)
		return path, false, nil
	}
	if f.Session == "" {
		return "", false, ErrNoSession
	}
	f.Logger.Info("downloading input", "year", year, "day", day)
	if err := f.download(ctx, year, day, path); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// download performs the GET and writes the body atomically to path.
func (f *Fetcher) download(ctx context.Context, year, day int, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(year, day), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})

	res, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: %s", ErrFetch, req.URL, res.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".aoc-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, res.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the cached input for year/day, if any.
func (f *Fetcher) Delete(year, day int) error {
	err := os.Remove(f.Path(year, day))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load fetches (or reuses) the input for year/day and returns its text.
func (f *Fetcher) Load(ctx context.Context, year, day int) (string, error) {
	path, _, err := f.Fetch(ctx, year, day)
	if err != nil {
		return "", err
	}
	return ReadString(path)
}
