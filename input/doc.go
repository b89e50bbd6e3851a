// Package input reads puzzle inputs from disk and downloads them from the
// Advent of Code website.
//
// What:
//
//   - ReadString / ReadLines: whole-file helpers used by every solver.
//   - Fetcher: one-shot HTTP GET of <BaseURL>/<year>/day/<day>/input with
//     the user's session cookie, cached as <CacheDir>/<year>_<day>.txt so a
//     given input is downloaded at most once.
//
// Errors:
//
//   - ErrNoSession: the fetcher has no session cookie to authenticate with.
//   - ErrFetch: the download failed or the server answered with a non-200.
//
// A failed download never leaves a partial file in the cache.
package input
