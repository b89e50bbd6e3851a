package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/advent/dijkstra"
)

// ExampleDistances computes shortest distances on a small directed graph.
func ExampleDistances() {
	g := sample()
	dist, err := dijkstra.Distances([]string{"A"}, fromGraph(g))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist["B"], dist["D"])
	// Output: 3 4
}
