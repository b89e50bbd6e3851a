package y2019

import (
	"strings"

	"github.com/katalvlaran/advent/geom"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2019, 16, solveDay16) }

// fftPhase applies one phase of the flawed frequency transmission. Output
// digit i sums runs of i+1 inputs with the repeating 0, 1, 0, -1 pattern,
// using prefix sums so each run costs O(1).
func fftPhase(sig []int) []int {
	n := len(sig)
	prefix := make([]int, n+1)
	for i, v := range sig {
		prefix[i+1] = prefix[i] + v
	}
	run := func(lo, hi int) int { return prefix[min(hi, n)] - prefix[min(lo, n)] }
	out := make([]int, n)
	for i := range sig {
		w := i + 1
		sum := 0
		for lo := i; lo < n; lo += 4 * w {
			sum += run(lo, lo+w)
			sum -= run(lo+2*w, lo+3*w)
		}
		out[i] = geom.Abs(sum) % 10
	}
	return out
}

func fft(sig []int, phases int) []int {
	for range phases {
		sig = fftPhase(sig)
	}
	return sig
}

func digitString(ds []int) string {
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// realMessage decodes the signal repeated 10000 times at the offset named by
// its first seven digits. Past the midpoint the pattern is all ones, so each
// phase is a suffix sum.
func realMessage(sig []int, phases int) (string, error) {
	offset := 0
	for _, d := range sig[:7] {
		offset = offset*10 + d
	}
	total := len(sig) * 10000
	if offset < total/2 || offset+8 > total {
		return "", puzzle.Malformed("message offset %d is outside the second half", offset)
	}
	tail := make([]int, total-offset)
	for i := range tail {
		tail[i] = sig[(offset+i)%len(sig)]
	}
	for range phases {
		sum := 0
		for i := len(tail) - 1; i >= 0; i-- {
			sum += tail[i]
			tail[i] = sum % 10
		}
	}
	return digitString(tail[:8]), nil
}

func solveDay16(input string) (puzzle.Answer, error) {
	sig, err := parse.Digits(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(sig) < 8 {
		return puzzle.Answer{}, puzzle.Malformed("signal too short")
	}
	ans := puzzle.Answer{Part1: digitString(fft(sig, 100)[:8])}
	if msg, err := realMessage(sig, 100); err == nil {
		ans.Part2 = msg
	}
	return ans, nil
}
