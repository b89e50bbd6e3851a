package y2021

import (
	"math/bits"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2021, 8, solveDay08) }

// segments is a set of lit wires a..g, one bit each.
type segments uint8

func parseSegments(s string) (segments, error) {
	var m segments
	for _, r := range s {
		if r < 'a' || r > 'g' {
			return 0, puzzle.Malformed("bad segment %q", r)
		}
		m |= 1 << (r - 'a')
	}
	return m, nil
}

func (s segments) count() int             { return bits.OnesCount8(uint8(s)) }
func (s segments) covers(o segments) bool { return s&o == o }

type display struct {
	patterns [10]segments
	output   [4]segments
}

func parseDisplays(input string) ([]display, error) {
	var out []display
	for _, line := range parse.Lines(input) {
		left, right, err := parse.Cut(line, "|")
		if err != nil {
			return nil, err
		}
		pats, outs := strings.Fields(left), strings.Fields(right)
		if len(pats) != 10 || len(outs) != 4 {
			return nil, puzzle.Malformed("bad display %q", line)
		}
		var d display
		for i, p := range pats {
			if d.patterns[i], err = parseSegments(p); err != nil {
				return nil, err
			}
		}
		for i, o := range outs {
			if d.output[i], err = parseSegments(o); err != nil {
				return nil, err
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// decode works out which pattern shows which digit from the four that have
// a unique segment count, then reads the output value.
func (d display) decode() (int, error) {
	var one, four segments
	for _, p := range d.patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return 0, puzzle.Malformed("display lacks a 1 or a 4")
	}
	digit := make(map[segments]int, 10)
	for _, p := range d.patterns {
		var v int
		switch p.count() {
		case 2:
			v = 1
		case 3:
			v = 7
		case 4:
			v = 4
		case 7:
			v = 8
		case 5:
			switch {
			case p.covers(one):
				v = 3
			case (p & four).count() == 3:
				v = 5
			default:
				v = 2
			}
		case 6:
			switch {
			case p.covers(four):
				v = 9
			case p.covers(one):
				v = 0
			default:
				v = 6
			}
		default:
			return 0, puzzle.Malformed("pattern with %d segments", p.count())
		}
		digit[p] = v
	}
	value := 0
	for _, o := range d.output {
		v, ok := digit[o]
		if !ok {
			return 0, puzzle.Malformed("output pattern not among the ten")
		}
		value = value*10 + v
	}
	return value, nil
}

func solveDay08(input string) (puzzle.Answer, error) {
	displays, err := parseDisplays(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	easy, sum := 0, 0
	for _, d := range displays {
		for _, o := range d.output {
			switch o.count() {
			case 2, 3, 4, 7:
				easy++
			}
		}
		v, err := d.decode()
		if err != nil {
			return puzzle.Answer{}, err
		}
		sum += v
	}
	return puzzle.Answer{Part1: easy, Part2: sum}, nil
}
