package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/advent/matrix"
)

// ExampleDistances_FloydWarshall closes a three-city table.
func ExampleDistances_FloydWarshall() {
	d, _ := matrix.FromRows([][]int{
		{0, 4, 11},
		{4, 0, 2},
		{11, 2, 0},
	})
	d.FloydWarshall()
	fmt.Println(d.Rows())
	// Output: [[0 4 6] [4 0 2] [6 2 0]]
}
