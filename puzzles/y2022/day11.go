package y2022

import (
	"regexp"
	"slices"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 11, solveDay11) }

var monkeyRx = regexp.MustCompile(`(?s)^Monkey \d+:\s+` +
	`Starting items:([\d, ]*)\s+` +
	`Operation: new = old ([*+]) (old|\d+)\s+` +
	`Test: divisible by (\d+)\s+` +
	`If true: throw to monkey (\d+)\s+` +
	`If false: throw to monkey (\d+)$`)

type monkey struct {
	items     []int
	op        byte
	operand   int
	squares   bool
	divisor   int
	onTrue    int
	onFalse   int
	inspected int
}

func (m *monkey) inspect(worry int) int {
	v := m.operand
	if m.squares {
		v = worry
	}
	if m.op == '*' {
		return worry * v
	}
	return worry + v
}

func parseMonkeys(input string) ([]monkey, error) {
	var out []monkey
	for _, b := range parse.Blocks(input) {
		f, err := parse.Scan(monkeyRx, strings.TrimSpace(b))
		if err != nil {
			return nil, err
		}
		m := monkey{op: f[1][0]}
		if m.items, err = parse.Ints(f[0]); err != nil {
			return nil, err
		}
		if m.squares = f[2] == "old"; !m.squares {
			if m.operand, err = parse.Int(f[2]); err != nil {
				return nil, err
			}
		}
		for i, dst := range []*int{&m.divisor, &m.onTrue, &m.onFalse} {
			if *dst, err = parse.Int(f[3+i]); err != nil {
				return nil, err
			}
		}
		out = append(out, m)
	}
	for i, m := range out {
		if m.divisor <= 0 {
			return nil, puzzle.Malformed("monkey %d divides by %d", i, m.divisor)
		}
		for _, to := range []int{m.onTrue, m.onFalse} {
			if to == i || to >= len(out) {
				return nil, puzzle.Malformed("monkey %d throws to monkey %d", i, to)
			}
		}
	}
	return out, nil
}

// monkeyBusiness plays rounds on a copy of troop. With relief the worry
// level is divided by three after each inspection; without it levels are
// kept modulo the product of all divisors, which preserves every test.
func monkeyBusiness(troop []monkey, rounds int, relief bool) int {
	ms := make([]monkey, len(troop))
	modulus := 1
	for i, m := range troop {
		ms[i] = m
		ms[i].items = slices.Clone(m.items)
		modulus *= m.divisor
	}
	for range rounds {
		for i := range ms {
			m := &ms[i]
			for _, w := range m.items {
				w = m.inspect(w)
				if relief {
					w /= 3
				} else {
					w %= modulus
				}
				to := m.onFalse
				if w%m.divisor == 0 {
					to = m.onTrue
				}
				ms[to].items = append(ms[to].items, w)
			}
			m.inspected += len(m.items)
			m.items = m.items[:0]
		}
	}
	counts := make([]int, len(ms))
	for i, m := range ms {
		counts[i] = m.inspected
	}
	slices.Sort(counts)
	return counts[len(counts)-1] * counts[len(counts)-2]
}

func solveDay11(input string) (puzzle.Answer, error) {
	troop, err := parseMonkeys(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(troop) < 2 {
		return puzzle.Answer{}, puzzle.Malformed("need at least two monkeys")
	}
	return puzzle.Answer{
		Part1: monkeyBusiness(troop, 20, true),
		Part2: monkeyBusiness(troop, 10_000, false),
	}, nil
}
