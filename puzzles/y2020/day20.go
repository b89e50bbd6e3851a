package y2020

import (
	"math"
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 20, solveDay20) }

var seaMonster = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

type photoTile struct {
	id  int
	img *grid.Grid[byte]
}

func parseTiles(input string) ([]photoTile, error) {
	var tiles []photoTile
	for _, block := range parse.Blocks(input) {
		lines := parse.Lines(block)
		head, _, err := parse.Cut(lines[0], ":")
		if err != nil {
			return nil, err
		}
		id, err := parse.Int(strings.TrimPrefix(head, "Tile "))
		if err != nil {
			return nil, err
		}
		g, err := grid.Bytes(strings.Join(lines[1:], "\n"))
		if err != nil {
			return nil, puzzle.Malformed("tile %d: %v", id, err)
		}
		if g.Width != g.Height || g.Width < 3 {
			return nil, puzzle.Malformed("tile %d is %dx%d", id, g.Width, g.Height)
		}
		tiles = append(tiles, photoTile{id: id, img: g})
	}
	side := int(math.Sqrt(float64(len(tiles))))
	if len(tiles) == 0 || side*side != len(tiles) {
		return nil, puzzle.Malformed("%d tiles do not form a square", len(tiles))
	}
	return tiles, nil
}

// orientations returns the eight rotations and reflections of g.
func orientations(g *grid.Grid[byte]) []*grid.Grid[byte] {
	out := make([]*grid.Grid[byte], 0, 8)
	for _, base := range []*grid.Grid[byte]{g, g.FlipH()} {
		cur := base
		for range 4 {
			out = append(out, cur)
			cur = cur.Rotate()
		}
	}
	return out
}

func topEdge(g *grid.Grid[byte]) string    { return string(g.Row(0)) }
func bottomEdge(g *grid.Grid[byte]) string { return string(g.Row(g.Height - 1)) }
func leftEdge(g *grid.Grid[byte]) string   { return string(g.Col(0)) }
func rightEdge(g *grid.Grid[byte]) string  { return string(g.Col(g.Width - 1)) }

// canonicalEdge identifies an edge regardless of reading direction.
func canonicalEdge(e string) string {
	b := []byte(e)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return min(e, string(b))
}

// jigsaw counts how many tiles carry each edge.
type jigsaw struct {
	tiles []photoTile
	edges map[string]int
}

func newJigsaw(tiles []photoTile) *jigsaw {
	j := &jigsaw{tiles: tiles, edges: map[string]int{}}
	for _, t := range tiles {
		for _, e := range []string{topEdge(t.img), bottomEdge(t.img), leftEdge(t.img), rightEdge(t.img)} {
			j.edges[canonicalEdge(e)]++
		}
	}
	return j
}

func (j *jigsaw) outer(e string) bool { return j.edges[canonicalEdge(e)] == 1 }

// corners returns the tiles with two unmatched edges.
func (j *jigsaw) corners() []photoTile {
	var out []photoTile
	for _, t := range j.tiles {
		n := 0
		for _, e := range []string{topEdge(t.img), bottomEdge(t.img), leftEdge(t.img), rightEdge(t.img)} {
			if j.outer(e) {
				n++
			}
		}
		if n == 2 {
			out = append(out, t)
		}
	}
	return out
}

// assemble lays the tiles out row by row starting from a corner whose
// unmatched edges face up and left.
func (j *jigsaw) assemble() ([][]*grid.Grid[byte], error) {
	corners := j.corners()
	if len(corners) != 4 {
		return nil, puzzle.Malformed("found %d corner tiles", len(corners))
	}
	side := int(math.Sqrt(float64(len(j.tiles))))
	placed := make([][]*grid.Grid[byte], side)
	used := map[int]bool{corners[0].id: true}
	for r := range placed {
		placed[r] = make([]*grid.Grid[byte], side)
	}
	for _, o := range orientations(corners[0].img) {
		if j.outer(topEdge(o)) && j.outer(leftEdge(o)) {
			placed[0][0] = o
			break
		}
	}
	for r := range side {
		for c := range side {
			if r == 0 && c == 0 {
				continue
			}
			fits := func(o *grid.Grid[byte]) bool {
				if c > 0 && leftEdge(o) != rightEdge(placed[r][c-1]) {
					return false
				}
				return r == 0 || topEdge(o) == bottomEdge(placed[r-1][c])
			}
			for _, t := range j.tiles {
				if used[t.id] {
					continue
				}
				for _, o := range orientations(t.img) {
					if fits(o) {
						placed[r][c], used[t.id] = o, true
						break
					}
				}
				if placed[r][c] != nil {
					break
				}
			}
			if placed[r][c] == nil {
				return nil, puzzle.Malformed("no tile fits at row %d col %d", r, c)
			}
		}
	}
	return placed, nil
}

// stitch drops every tile border and joins the interiors into one image.
func stitch(placed [][]*grid.Grid[byte]) *grid.Grid[byte] {
	inner := placed[0][0].Width - 2
	n := len(placed) * inner
	img := grid.New(n, n, byte('.'))
	for tr, row := range placed {
		for tc, t := range row {
			for r := range inner {
				for c := range inner {
					img.Set(geom.L(tr*inner+r, tc*inner+c), t.At(geom.L(r+1, c+1)))
				}
			}
		}
	}
	return img
}

// roughness counts the # cells not covered by any sea monster, in the
// orientation where monsters appear.
func roughness(img *grid.Grid[byte]) (int, bool) {
	var shape []geom.Vector
	for r, line := range seaMonster {
		for c := range len(line) {
			if line[c] == '#' {
				shape = append(shape, geom.Vector{DRow: r, DCol: c})
			}
		}
	}
	for _, o := range orientations(img) {
		covered := map[geom.Location]bool{}
		for at := range o.All() {
			hit := true
			for _, v := range shape {
				if b, ok := o.Get(at.Add(v)); !ok || b != '#' {
					hit = false
					break
				}
			}
			if hit {
				for _, v := range shape {
					covered[at.Add(v)] = true
				}
			}
		}
		if len(covered) > 0 {
			return o.Count(func(b byte) bool { return b == '#' }) - len(covered), true
		}
	}
	return 0, false
}

func solveDay20(input string) (puzzle.Answer, error) {
	tiles, err := parseTiles(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	j := newJigsaw(tiles)
	corners := j.corners()
	if len(corners) != 4 {
		return puzzle.Answer{}, puzzle.Malformed("found %d corner tiles", len(corners))
	}
	product := 1
	for _, t := range corners {
		product *= t.id
	}
	ans := puzzle.Answer{Part1: product}
	placed, err := j.assemble()
	if err != nil {
		return ans, err
	}
	if rough, ok := roughness(stitch(placed)); ok {
		ans.Part2 = rough
	}
	return ans, nil
}
