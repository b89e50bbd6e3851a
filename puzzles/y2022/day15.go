package y2022

import (
	"regexp"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2022, 15, solveDay15) }

const (
	beaconRow   = 2_000_000
	beaconLimit = 4_000_000
)

var sensorRx = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

type sensor struct {
	at, beacon geom.Pt
	radius     int
}

func (s sensor) covers(p geom.Pt) bool { return s.at.Manhattan(p) <= s.radius }

func parseSensors(input string) ([]sensor, error) {
	var out []sensor
	for _, line := range parse.Lines(input) {
		m, err := parse.Scan(sensorRx, line)
		if err != nil {
			return nil, err
		}
		var n [4]int
		for i := range n {
			if n[i], err = parse.Int(m[i]); err != nil {
				return nil, err
			}
		}
		s := sensor{at: geom.P(n[0], n[1]), beacon: geom.P(n[2], n[3])}
		s.radius = s.at.Manhattan(s.beacon)
		out = append(out, s)
	}
	return out, nil
}

// rowCoverage counts positions on row y where no beacon can be.
func rowCoverage(sensors []sensor, y int) int {
	covered := intervals.Merge()
	for _, s := range sensors {
		reach := s.radius - geom.Abs(s.at.Y-y)
		if reach >= 0 {
			covered.Add(intervals.Interval{Lo: s.at.X - reach, Hi: s.at.X + reach})
		}
	}
	beacons := make(map[int]bool)
	for _, s := range sensors {
		if s.beacon.Y == y && covered.Contains(s.beacon.X) {
			beacons[s.beacon.X] = true
		}
	}
	return covered.Len() - len(beacons)
}

// distressBeacon finds the one uncovered point within [0, limit]². It must
// sit just outside two sensor diamonds, so only the crossings of their
// border diagonals (y = x + a and y = -x + b) are tried.
func distressBeacon(sensors []sensor, limit int) (geom.Pt, bool) {
	rising, falling := make(map[int]bool), make(map[int]bool)
	for _, s := range sensors {
		r := s.radius + 1
		rising[s.at.Y-s.at.X+r] = true
		rising[s.at.Y-s.at.X-r] = true
		falling[s.at.Y+s.at.X+r] = true
		falling[s.at.Y+s.at.X-r] = true
	}
	for a := range rising {
		for b := range falling {
			if (b-a)%2 != 0 {
				continue
			}
			p := geom.P((b-a)/2, (a+b)/2)
			if p.X < 0 || p.Y < 0 || p.X > limit || p.Y > limit {
				continue
			}
			free := true
			for _, s := range sensors {
				if s.covers(p) {
					free = false
					break
				}
			}
			if free {
				return p, true
			}
		}
	}
	return geom.Pt{}, false
}

func solveDay15(input string) (puzzle.Answer, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{Part1: rowCoverage(sensors, beaconRow)}
	if p, ok := distressBeacon(sensors, beaconLimit); ok {
		ans.Part2 = p.X*4_000_000 + p.Y
	}
	return ans, nil
}
