package y2019

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 8, solveDay08) }

const (
	imageWidth  = 25
	imageHeight = 6
)

func imageLayers(input string, w, h int) ([][]int, error) {
	px, err := parse.Digits(input)
	if err != nil {
		return nil, err
	}
	size := w * h
	if len(px) == 0 || len(px)%size != 0 {
		return nil, puzzle.Malformed("%d pixels do not fill %dx%d layers", len(px), w, h)
	}
	var layers [][]int
	for i := 0; i < len(px); i += size {
		layers = append(layers, px[i:i+size])
	}
	return layers, nil
}

// checksum multiplies the 1s and 2s of the layer with the fewest 0s.
func checksum(layers [][]int) int {
	best, fewest := 0, -1
	for _, l := range layers {
		var count [3]int
		for _, p := range l {
			if p < 3 {
				count[p]++
			}
		}
		if fewest < 0 || count[0] < fewest {
			fewest = count[0]
			best = count[1] * count[2]
		}
	}
	return best
}

// render stacks the layers front to back; 2 is transparent.
func render(layers [][]int, w int) string {
	var sb strings.Builder
	for i := range layers[0] {
		if i > 0 && i%w == 0 {
			sb.WriteByte('\n')
		}
		ch := byte('.')
		for _, l := range layers {
			if l[i] != 2 {
				if l[i] == 1 {
					ch = '#'
				}
				break
			}
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func solveDay08(input string) (puzzle.Answer, error) {
	layers, err := imageLayers(input, imageWidth, imageHeight)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: checksum(layers), Part2: render(layers, imageWidth)}, nil
}
