package y2019

import (
	"sort"
	"strings"

	"github.com/katalvlaran/advent/dfs"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 14, solveDay14) }

const oreStock = 1_000_000_000_000

type reaction struct {
	yield  int
	inputs map[string]int
}

// nanofactory holds the reactions plus a production order in which every
// chemical comes before the chemicals it is made from.
type nanofactory struct {
	reactions map[string]reaction
	order     []string
}

func parseQuantity(s string) (int, string, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return 0, "", puzzle.Malformed("bad quantity %q", s)
	}
	n, err := parse.Int(f[0])
	if err != nil {
		return 0, "", err
	}
	return n, f[1], nil
}

func parseNanofactory(input string) (*nanofactory, error) {
	f := &nanofactory{reactions: map[string]reaction{}}
	deps := graph.New[string](graph.WithDirected())
	for _, line := range parse.Lines(input) {
		lhs, rhs, err := parse.Cut(line, "=>")
		if err != nil {
			return nil, err
		}
		n, out, err := parseQuantity(rhs)
		if err != nil {
			return nil, err
		}
		if _, dup := f.reactions[out]; dup {
			return nil, puzzle.Malformed("two reactions produce %s", out)
		}
		r := reaction{yield: n, inputs: map[string]int{}}
		for _, in := range strings.Split(lhs, ",") {
			k, chem, err := parseQuantity(in)
			if err != nil {
				return nil, err
			}
			r.inputs[chem] += k
			deps.AddEdge(out, chem, k)
		}
		f.reactions[out] = r
	}
	if _, ok := f.reactions["FUEL"]; !ok {
		return nil, puzzle.Malformed("no reaction produces FUEL")
	}
	order, err := dfs.TopologicalSort(deps)
	if err != nil {
		return nil, puzzle.Malformed("reactions: %v", err)
	}
	f.order = order
	return f, nil
}

// oreFor returns the ORE needed for fuel units of FUEL.
func (f *nanofactory) oreFor(fuel int) int {
	need := map[string]int{"FUEL": fuel}
	for _, chem := range f.order {
		r, ok := f.reactions[chem]
		if !ok || need[chem] <= 0 {
			continue
		}
		batches := (need[chem] + r.yield - 1) / r.yield
		for in, k := range r.inputs {
			need[in] += batches * k
		}
	}
	return need["ORE"]
}

// maxFuel is the most FUEL the given ORE can make.
func (f *nanofactory) maxFuel(ore int) int {
	per := f.oreFor(1)
	if per == 0 {
		return 0
	}
	hi := ore/per*2 + 1
	// sort.Search finds the first amount needing more ore than we have
	return sort.Search(hi, func(n int) bool { return f.oreFor(n) > ore }) - 1
}

func solveDay14(input string) (puzzle.Answer, error) {
	f, err := parseNanofactory(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: f.oreFor(1), Part2: f.maxFuel(oreStock)}, nil
}
