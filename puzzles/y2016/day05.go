package y2016

import (
	"crypto/md5"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2016, 5, solveDay05) }

const hexDigits = "0123456789abcdef"

// doorPasswords derives both eight-character passwords in one pass over the
// hashes whose hex form starts with five zeroes.
func doorPasswords(id string) (string, string) {
	var (
		seq    []byte
		pos    [8]byte
		filled int
	)
	buf := []byte(id)
	for n := 0; len(seq) < 8 || filled < 8; n++ {
		buf = strconv.AppendInt(buf[:len(id)], int64(n), 10)
		sum := md5.Sum(buf)
		if sum[0] != 0 || sum[1] != 0 || sum[2]&0xf0 != 0 {
			continue
		}
		sixth, seventh := sum[2]&0x0f, sum[3]>>4
		if len(seq) < 8 {
			seq = append(seq, hexDigits[sixth])
		}
		if sixth < 8 && pos[sixth] == 0 {
			pos[sixth] = hexDigits[seventh]
			filled++
		}
	}
	return string(seq), string(pos[:])
}

func solveDay05(input string) (puzzle.Answer, error) {
	id := strings.TrimSpace(input)
	if id == "" {
		return puzzle.Answer{}, puzzle.Malformed("empty door id")
	}
	p1, p2 := doorPasswords(id)
	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
