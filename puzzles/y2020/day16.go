package y2020

import (
	"strings"

	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 16, solveDay16) }

type ticketField struct {
	name  string
	valid *intervals.Set
}

type ticketNotes struct {
	fields []ticketField
	mine   []int
	nearby [][]int
}

func parseTicketNotes(input string) (*ticketNotes, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 3 {
		return nil, puzzle.Malformed("want 3 sections, got %d", len(blocks))
	}
	n := &ticketNotes{}
	for _, line := range parse.Lines(blocks[0]) {
		name, ranges, err := parse.Cut(line, ": ")
		if err != nil {
			return nil, err
		}
		bounds, err := parse.Uints(ranges)
		if err != nil {
			return nil, err
		}
		if len(bounds) == 0 || len(bounds)%2 != 0 {
			return nil, puzzle.Malformed("bad ranges %q", ranges)
		}
		set := intervals.Merge()
		for i := 0; i < len(bounds); i += 2 {
			set.Add(intervals.Interval{Lo: bounds[i], Hi: bounds[i+1]})
		}
		n.fields = append(n.fields, ticketField{name: name, valid: set})
	}
	mine := parse.Lines(blocks[1])
	if len(mine) != 2 {
		return nil, puzzle.Malformed("bad ticket section")
	}
	var err error
	if n.mine, err = parse.Split(mine[1], ","); err != nil {
		return nil, err
	}
	for _, line := range parse.Lines(blocks[2])[1:] {
		t, err := parse.Split(line, ",")
		if err != nil {
			return nil, err
		}
		if len(t) != len(n.mine) {
			return nil, puzzle.Malformed("ticket %q has %d values", line, len(t))
		}
		n.nearby = append(n.nearby, t)
	}
	return n, nil
}

// errorRate sums the values valid for no field and returns the tickets
// without such values.
func (n *ticketNotes) errorRate() (int, [][]int) {
	union := intervals.Merge()
	for _, f := range n.fields {
		for _, iv := range f.valid.Intervals() {
			union.Add(iv)
		}
	}
	rate := 0
	var ok [][]int
	for _, t := range n.nearby {
		valid := true
		for _, v := range t {
			if !union.Contains(v) {
				rate += v
				valid = false
			}
		}
		if valid {
			ok = append(ok, t)
		}
	}
	return rate, ok
}

// assign resolves which column holds which field by repeatedly fixing a
// field that fits exactly one remaining column.
func (n *ticketNotes) assign(tickets [][]int) (map[string]int, error) {
	tickets = append(tickets, n.mine)
	cols := len(n.mine)
	fits := make([]map[int]bool, len(n.fields))
	for fi, f := range n.fields {
		fits[fi] = map[int]bool{}
		for c := range cols {
			ok := true
			for _, t := range tickets {
				if !f.valid.Contains(t[c]) {
					ok = false
					break
				}
			}
			if ok {
				fits[fi][c] = true
			}
		}
	}
	out := make(map[string]int, len(n.fields))
	for len(out) < len(n.fields) {
		progress := false
		for fi, cs := range fits {
			if len(cs) != 1 {
				continue
			}
			var col int
			for c := range cs {
				col = c
			}
			out[n.fields[fi].name] = col
			for _, other := range fits {
				delete(other, col)
			}
			progress = true
		}
		if !progress {
			return nil, puzzle.ErrNoSolution
		}
	}
	return out, nil
}

func solveDay16(input string) (puzzle.Answer, error) {
	notes, err := parseTicketNotes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	rate, valid := notes.errorRate()
	ans := puzzle.Answer{Part1: rate}
	cols, err := notes.assign(valid)
	if err != nil {
		return ans, nil
	}
	product, found := 1, false
	for name, c := range cols {
		if strings.HasPrefix(name, "departure") {
			product *= notes.mine[c]
			found = true
		}
	}
	if found {
		ans.Part2 = product
	}
	return ans, nil
}
