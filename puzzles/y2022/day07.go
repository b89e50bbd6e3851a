package y2022

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 7, solveDay07) }

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
)

// dirSizes replays a terminal session and returns the total size below
// every directory, keyed by its slash-joined path ("/" is the root).
func dirSizes(input string) (map[string]int, error) {
	sizes := map[string]int{"/": 0}
	var cwd []string
	for _, line := range parse.Lines(input) {
		f := strings.Fields(line)
		switch {
		case len(f) == 3 && f[0] == "$" && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = cwd[:0]
			case "..":
				if len(cwd) > 0 {
					cwd = cwd[:len(cwd)-1]
				}
			default:
				cwd = append(cwd, f[2])
			}
		case len(f) == 2 && f[0] == "$" && f[1] == "ls":
		case len(f) == 2 && f[0] == "dir":
		case len(f) == 2:
			size, err := parse.Int(f[0])
			if err != nil {
				return nil, err
			}
			sizes["/"] += size
			for i := range cwd {
				sizes["/"+strings.Join(cwd[:i+1], "/")] += size
			}
		default:
			return nil, puzzle.Malformed("bad terminal line %q", line)
		}
	}
	return sizes, nil
}

func solveDay07(input string) (puzzle.Answer, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	small := 0
	need := updateSize - (diskSize - sizes["/"])
	freed := sizes["/"]
	for _, s := range sizes {
		if s <= 100_000 {
			small += s
		}
		if s >= need && s < freed {
			freed = s
		}
	}
	return puzzle.Answer{Part1: small, Part2: freed}, nil
}
