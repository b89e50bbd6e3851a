package y2022

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/matrix"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 16, solveDay16) }

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// volcano is the tunnel network reduced to the valves worth opening.
type volcano struct {
	dist   *matrix.Distances
	start  int
	useful []int // matrix indices of valves with flow
	rates  []int // flow of useful[i]
}

func parseVolcano(input string) (*volcano, error) {
	g := graph.New[string]()
	rates := make(map[string]int)
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(valveRx, line)
		if err != nil {
			return nil, err
		}
		if rates[m[0]], err = parse.Int(m[1]); err != nil {
			return nil, err
		}
		g.AddVertex(m[0])
		for _, to := range strings.Split(m[2], ", ") {
			g.AddEdge(m[0], to, 1)
		}
	}
	if !g.HasVertex("AA") {
		return nil, puzzle.Malformed("no valve AA")
	}
	dist, index, err := matrix.FromGraph(g)
	if err != nil {
		return nil, err
	}
	dist.FloydWarshall()
	v := &volcano{dist: dist}
	for i, name := range index {
		if name == "AA" {
			v.start = i
		}
		if r := rates[name]; r > 0 {
			v.useful = append(v.useful, i)
			v.rates = append(v.rates, r)
		}
	}
	if len(v.useful) > 20 {
		return nil, puzzle.Malformed("%d valves with flow is too many", len(v.useful))
	}
	return v, nil
}

// bestReleases returns, for every set of useful valves (as a bitmask) one
// walker can open within minutes, the most pressure it can release by
// opening exactly that set.
func (v *volcano) bestReleases(minutes int) map[uint32]int {
	best := make(map[uint32]int)
	var walk func(at, left int, open uint32, released int)
	walk = func(at, left int, open uint32, released int) {
		best[open] = max(best[open], released)
		for j, to := range v.useful {
			if open&(1<<j) != 0 {
				continue
			}
			t := left - v.dist.MustAt(at, to) - 1
			if t <= 0 {
				continue
			}
			walk(to, t, open|1<<j, released+t*v.rates[j])
		}
	}
	walk(v.start, minutes, 0, 0)
	return best
}

func solveDay16(input string) (puzzle.Answer, error) {
	v, err := parseVolcano(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	alone := 0
	for _, r := range v.bestReleases(30) {
		alone = max(alone, r)
	}

	type plan struct {
		open     uint32
		released int
	}
	var plans []plan
	for open, r := range v.bestReleases(26) {
		plans = append(plans, plan{open, r})
	}
	paired := 0
	for i, me := range plans {
		for _, elephant := range plans[i:] {
			if me.open&elephant.open == 0 {
				paired = max(paired, me.released+elephant.released)
			}
		}
	}
	return puzzle.Answer{Part1: alone, Part2: paired}, nil
}
