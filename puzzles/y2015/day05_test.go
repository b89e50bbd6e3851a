package y2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay05_Rules(t *testing.T) {
	for s, want := range map[string]bool{
		"ugknbfddgicrmopn": true,
		"aaa":              true,
		"jchzalrnumimnmhp": false,
		"haegwjzuvuyypxyu": false,
		"dvszwmarrgswjxmb": false,
	} {
		assert.Equal(t, want, niceOld(s), s)
	}
	for s, want := range map[string]bool{
		"qjhvhtzxzqqjkmpb": true,
		"xxyxx":            true,
		"aaa":              false,
		"uurcxstgmygtbstg": false,
		"ieodomkazucvgmuy": false,
	} {
		assert.Equal(t, want, niceNew(s), s)
	}
}
