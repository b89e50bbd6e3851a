package y2024

import (
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2024, 9, solveDay09) }

const freeBlock = -1

// diskBlocks expands a dense disk map into one file id (or freeBlock) per
// block.
func diskBlocks(dense string) ([]int, error) {
	sizes, err := parse.Digits(dense)
	if err != nil {
		return nil, err
	}
	var blocks []int
	for i, n := range sizes {
		id := freeBlock
		if i%2 == 0 {
			id = i / 2
		}
		for range n {
			blocks = append(blocks, id)
		}
	}
	return blocks, nil
}

func renderDisk(blocks []int) string {
	var b strings.Builder
	for _, id := range blocks {
		if id == freeBlock {
			b.WriteByte('.')
		} else {
			b.WriteByte(byte('0' + id%10))
		}
	}
	return b.String()
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != freeBlock {
			sum += i * id
		}
	}
	return sum
}

// compactBlocks moves single blocks from the end into the leftmost gaps.
func compactBlocks(blocks []int) []int {
	out := append([]int(nil), blocks...)
	lo, hi := 0, len(out)-1
	for {
		for lo < hi && out[lo] != freeBlock {
			lo++
		}
		for hi > lo && out[hi] == freeBlock {
			hi--
		}
		if lo >= hi {
			return out
		}
		out[lo], out[hi] = out[hi], freeBlock
	}
}

type diskSpan struct{ start, size int }

// compactFiles moves each whole file once, highest id first, into the
// leftmost gap that fits it.
func compactFiles(blocks []int) []int {
	out := append([]int(nil), blocks...)
	var files, gaps []diskSpan
	for i := 0; i < len(out); {
		j := i
		for j < len(out) && out[j] == out[i] {
			j++
		}
		if out[i] == freeBlock {
			gaps = append(gaps, diskSpan{i, j - i})
		} else {
			files = append(files, diskSpan{i, j - i})
		}
		i = j
	}
	for f := len(files) - 1; f >= 0; f-- {
		file := files[f]
		for g := range gaps {
			gap := &gaps[g]
			if gap.start >= file.start {
				break
			}
			if gap.size < file.size {
				continue
			}
			id := out[file.start]
			for k := range file.size {
				out[gap.start+k] = id
				out[file.start+k] = freeBlock
			}
			gap.start += file.size
			gap.size -= file.size
			break
		}
	}
	return out
}

func solveDay09(input string) (puzzle.Answer, error) {
	blocks, err := diskBlocks(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: checksum(compactBlocks(blocks)),
		Part2: checksum(compactFiles(blocks)),
	}, nil
}
