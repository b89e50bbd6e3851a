package y2019

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 10, solveDay10) }

func gcd(a, b int) int {
	a, b = geom.Abs(a), geom.Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

// sightline reduces the offset from p to q to its primitive step.
func sightline(p, q geom.Pt) geom.Pt {
	d := q.Sub(p)
	g := gcd(d.X, d.Y)
	return geom.P(d.X/g, d.Y/g)
}

func asteroids(input string) ([]geom.Pt, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return nil, puzzle.Malformed("asteroid map: %v", err)
	}
	var out []geom.Pt
	for loc, b := range g.All() {
		switch b {
		case '#':
			out = append(out, loc.Pt())
		case '.':
		default:
			return nil, puzzle.Malformed("unexpected %q at %v", b, loc)
		}
	}
	return out, nil
}

// bestStation returns the asteroid that sees the most others.
func bestStation(field []geom.Pt) (geom.Pt, int) {
	var best geom.Pt
	most := -1
	for _, p := range field {
		dirs := make(map[geom.Pt]bool)
		for _, q := range field {
			if q != p {
				dirs[sightline(p, q)] = true
			}
		}
		if len(dirs) > most {
			best, most = p, len(dirs)
		}
	}
	return best, most
}

// vaporizeOrder sweeps a laser clockwise from straight up, destroying the
// nearest asteroid on each sightline per rotation.
func vaporizeOrder(station geom.Pt, field []geom.Pt) []geom.Pt {
	lines := make(map[geom.Pt][]geom.Pt)
	for _, q := range field {
		if q != station {
			s := sightline(station, q)
			lines[s] = append(lines[s], q)
		}
	}
	angle := func(s geom.Pt) float64 {
		a := math.Atan2(float64(s.X), float64(-s.Y))
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}
	sweep := make([]geom.Pt, 0, len(lines))
	for s, qs := range lines {
		slices.SortFunc(qs, func(a, b geom.Pt) int {
			return cmp.Compare(a.Manhattan(station), b.Manhattan(station))
		})
		sweep = append(sweep, s)
	}
	slices.SortFunc(sweep, func(a, b geom.Pt) int { return cmp.Compare(angle(a), angle(b)) })

	var order []geom.Pt
	for len(order) < len(field)-1 {
		for _, s := range sweep {
			if qs := lines[s]; len(qs) > 0 {
				order = append(order, qs[0])
				lines[s] = qs[1:]
			}
		}
	}
	return order
}

func solveDay10(input string) (puzzle.Answer, error) {
	field, err := asteroids(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(field) < 2 {
		return puzzle.Answer{}, puzzle.Malformed("need at least two asteroids")
	}
	station, seen := bestStation(field)
	ans := puzzle.Answer{Part1: seen}
	if order := vaporizeOrder(station, field); len(order) >= 200 {
		ans.Part2 = order[199].X*100 + order[199].Y
	}
	return ans, nil
}
