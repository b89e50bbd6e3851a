package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

func runCmd(a *app) *cobra.Command {
	var part int
	var inputPath string

	c := &cobra.Command{
		Use:   "run <year> [day]",
		Short: "Solve one day, or every registered day of a year",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseArg("year", args[0])
			if err != nil {
				return err
			}
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 1 or 2, got %d", part)
			}

			days := puzzle.Days(year)
			if len(args) == 2 {
				day, err := parseArg("day", args[1])
				if err != nil {
					return err
				}
				days = []int{day}
			} else if inputPath != "" {
				return errors.New("--input needs a single day")
			}
			if len(days) == 0 {
				return fmt.Errorf("%w: nothing registered for %d", puzzle.ErrUnknownPuzzle, year)
			}

			p := newPrinter(cmd.OutOrStdout())
			var failed int
			for _, day := range days {
				if err := a.runDay(cmd.Context(), p, year, day, part, inputPath); err != nil {
					if len(days) == 1 {
						return err
					}
					p.failure(err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d days failed", failed, len(days))
			}
			return nil
		},
	}

	c.Flags().IntVarP(&part, "part", "p", 0, "print only part 1 or 2")
	c.Flags().StringVarP(&inputPath, "input", "i", "", "read input from this file instead of the cache")
	return c
}

func (a *app) runDay(ctx context.Context, p *printer, year, day, part int, inputPath string) error {
	key := puzzle.Key{Year: year, Day: day}
	solve, err := puzzle.Lookup(year, day)
	if err != nil {
		return err
	}
	text, err := a.resolveInput(ctx, year, day, inputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	ans, err := solve(text)
	took := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	a.log.Debug("solved", "puzzle", key.String(), "took", took)

	p.header(key)
	for n := 1; n <= 2; n++ {
		if part != 0 && part != n {
			continue
		}
		if v := ans.Part(n); v != nil {
			p.answer(n, v, took)
		}
	}
	return nil
}

// resolveInput picks the explicit file, then <InputDir>/<year>/<day>.txt,
// then the download cache.
func (a *app) resolveInput(ctx context.Context, year, day int, override string) (string, error) {
	if override != "" {
		a.log.Debug("reading input", "path", override)
		return input.ReadString(override)
	}
	if a.cfg.InputDir != "" {
		local := filepath.Join(a.cfg.InputDir, strconv.Itoa(year), strconv.Itoa(day)+".txt")
		if input.Exists(local) {
			a.log.Debug("reading input", "path", local)
			return input.ReadString(local)
		}
	}
	return a.fetcher().Load(ctx, year, day)
}

func (a *app) fetcher() *input.Fetcher {
	return input.NewFetcher(a.cfg.Session,
		input.WithBaseURL(a.cfg.BaseURL),
		input.WithCacheDir(a.cfg.CacheDir),
		input.WithLogger(a.log),
	)
}

func parseArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}
