package y2015

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 6, solveDay06) }

var lightRx = regexp.MustCompile(`^(turn on|turn off|toggle) (\d+),(\d+) through (\d+),(\d+)$`)

type lightCmd struct {
	op             string
	x0, y0, x1, y1 int
}

func parseLightCmds(input string) ([]lightCmd, error) {
	var cmds []lightCmd
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(lightRx, line)
		if err != nil {
			return nil, err
		}
		c := lightCmd{op: m[0]}
		for i, dst := range []*int{&c.x0, &c.y0, &c.x1, &c.y1} {
			*dst, _ = strconv.Atoi(m[i+1])
		}
		if c.x1 > 999 || c.y1 > 999 || c.x0 > c.x1 || c.y0 > c.y1 {
			return nil, puzzle.Malformed("bad rectangle in %q", line)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func solveDay06(input string) (puzzle.Answer, error) {
	cmds, err := parseLightCmds(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	lit := make([]bool, 1000*1000)
	bright := make([]int, 1000*1000)
	for _, c := range cmds {
		for y := c.y0; y <= c.y1; y++ {
			for x := c.x0; x <= c.x1; x++ {
				i := y*1000 + x
				switch c.op {
				case "turn on":
					lit[i] = true
					bright[i]++
				case "turn off":
					lit[i] = false
					bright[i] = max(0, bright[i]-1)
				default:
					lit[i] = !lit[i]
					bright[i] += 2
				}
			}
		}
	}
	on, total := 0, 0
	for i := range lit {
		if lit[i] {
			on++
		}
		total += bright[i]
	}
	return puzzle.Answer{Part1: on, Part2: total}, nil
}
