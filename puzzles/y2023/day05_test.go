package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/intervals"
)

const day05Example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func TestAlmanacStage(t *testing.T) {
	_, stages, err := parseAlmanac(day05Example)
	require.NoError(t, err)
	require.Len(t, stages, 7)

	soil := stages[0].apply(intervals.Merge(
		intervals.Interval{Lo: 79, Hi: 79},
		intervals.Interval{Lo: 14, Hi: 14},
		intervals.Interval{Lo: 55, Hi: 55},
		intervals.Interval{Lo: 13, Hi: 13},
	))
	for _, want := range []int{81, 14, 57, 13} {
		assert.True(t, soil.Contains(want), want)
	}
	assert.Equal(t, 4, soil.Len())
}

func TestDay05(t *testing.T) {
	ans, err := solveDay05(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 35, ans.Part1)
	assert.Equal(t, 46, ans.Part2)
}
