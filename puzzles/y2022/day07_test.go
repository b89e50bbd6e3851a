package y2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day07Example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k`

func TestDay07(t *testing.T) {
	sizes, err := dirSizes(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 584, sizes["/a/e"])
	assert.Equal(t, 94853, sizes["/a"])
	assert.Equal(t, 24933642, sizes["/d"])
	assert.Equal(t, 48381165, sizes["/"])

	ans, err := solveDay07(day07Example)
	require.NoError(t, err)
	assert.Equal(t, 95437, ans.Part1)
	assert.Equal(t, 24933642, ans.Part2)
}
