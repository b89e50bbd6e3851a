package grid_test

import (
	"fmt"

	"github.com/katalvlaran/advent/grid"
)

// ExampleGrid_Components counts lakes: contiguous regions of '~' cells.
func ExampleGrid_Components() {
	g, _ := grid.Bytes("~~.~\n..~~\n~...")

	lakes := g.Components(grid.Conn4, func(b byte) bool { return b == '~' })
	fmt.Println("lakes:", len(lakes))
	for _, lake := range lakes {
		fmt.Println(len(lake), lake[0])
	}

	// Output:
	// lakes: 3
	// 2 (0,0)
	// 3 (0,3)
	// 1 (2,0)
}
