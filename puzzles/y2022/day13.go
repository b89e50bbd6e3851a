package y2022

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 13, solveDay13) }

// A packet is a float64 or a []any of packets, as decoded from JSON.
type packet = any

func parsePacket(s string) (packet, error) {
	var p packet
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, puzzle.Malformed("bad packet %q: %v", s, err)
	}
	return p, nil
}

func comparePackets(a, b packet) int {
	an, aNum := a.(float64)
	bn, bNum := b.(float64)
	switch {
	case aNum && bNum:
		return cmp.Compare(an, bn)
	case aNum:
		return comparePackets([]any{a}, b)
	case bNum:
		return comparePackets(a, []any{b})
	}
	al, bl := a.([]any), b.([]any)
	for i := range min(len(al), len(bl)) {
		if c := comparePackets(al[i], bl[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(al), len(bl))
}

func solveDay13(input string) (puzzle.Answer, error) {
	var all []packet
	for _, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		p, err := parsePacket(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if _, ok := p.([]any); !ok {
			return puzzle.Answer{}, puzzle.Malformed("packet %q is not a list", line)
		}
		all = append(all, p)
	}
	if len(all)%2 != 0 {
		return puzzle.Answer{}, puzzle.Malformed("odd number of packets")
	}
	ordered := 0
	for i := 0; i < len(all); i += 2 {
		if comparePackets(all[i], all[i+1]) < 0 {
			ordered += i/2 + 1
		}
	}

	d2, _ := parsePacket("[[2]]")
	d6, _ := parsePacket("[[6]]")
	all = append(all, d2, d6)
	slices.SortFunc(all, comparePackets)
	key := 1
	for i, p := range all {
		if comparePackets(p, d2) == 0 || comparePackets(p, d6) == 0 {
			key *= i + 1
		}
	}
	return puzzle.Answer{Part1: ordered, Part2: key}, nil
}
