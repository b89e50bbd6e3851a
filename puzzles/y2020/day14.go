package y2020

import (
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 14, solveDay14) }

var (
	maskRx = regexp.MustCompile(`^mask = ([01X]{36})$`)
	memRx  = regexp.MustCompile(`^mem\[(\d+)\] = (\d+)$`)
)

// maxFloating bounds the addresses one decoder write may fan out to.
const maxFloating = 16

// bitmask splits a mask into the bits forced to one, the bits forced to
// zero and the floating (X) bits.
type bitmask struct {
	ones, zeros, floating uint64
}

type dockOp struct {
	mask      *bitmask
	addr, val uint64
}

func parseDocking(input string) ([]dockOp, error) {
	var ops []dockOp
	for _, line := range parse.Lines(input) {
		line = strings.TrimSpace(line)
		if m := maskRx.FindStringSubmatch(line); m != nil {
			var bm bitmask
			for _, ch := range m[1] {
				bm.ones, bm.zeros, bm.floating = bm.ones<<1, bm.zeros<<1, bm.floating<<1
				switch ch {
				case '1':
					bm.ones |= 1
				case '0':
					bm.zeros |= 1
				default:
					bm.floating |= 1
				}
			}
			ops = append(ops, dockOp{mask: &bm})
			continue
		}
		m, err := parse.Scan(memRx, line)
		if err != nil {
			return nil, err
		}
		addr, _ := strconv.ParseUint(m[0], 10, 64)
		val, _ := strconv.ParseUint(m[1], 10, 64)
		ops = append(ops, dockOp{addr: addr, val: val})
	}
	if len(ops) > 0 && ops[0].mask == nil {
		return nil, puzzle.Malformed("program must start with a mask")
	}
	return ops, nil
}

func memSum(mem map[uint64]uint64) int {
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return int(sum)
}

// dockV1 masks the values written.
func dockV1(ops []dockOp) int {
	mem := make(map[uint64]uint64)
	var mask *bitmask
	for _, op := range ops {
		if op.mask != nil {
			mask = op.mask
			continue
		}
		mem[op.addr] = op.val&^mask.zeros | mask.ones
	}
	return memSum(mem)
}

// dockV2 masks the addresses, writing to every combination of the floating
// bits.
func dockV2(ops []dockOp) (int, error) {
	mem := make(map[uint64]uint64)
	var mask *bitmask
	for _, op := range ops {
		if op.mask != nil {
			mask = op.mask
			if n := bits.OnesCount64(mask.floating); n > maxFloating {
				return 0, puzzle.Malformed("mask floats %d bits", n)
			}
			continue
		}
		base := (op.addr | mask.ones) &^ mask.floating
		// enumerate the subsets of the floating bits
		for sub := mask.floating; ; sub = (sub - 1) & mask.floating {
			mem[base|sub] = op.val
			if sub == 0 {
				break
			}
		}
	}
	return memSum(mem), nil
}

func solveDay14(input string) (puzzle.Answer, error) {
	ops, err := parseDocking(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{Part1: dockV1(ops)}
	if v2, err := dockV2(ops); err == nil {
		ans.Part2 = v2
	}
	return ans, nil
}
