package builder_test

import (
	"fmt"

	"github.com/katalvlaran/percolath/builder"
)

// ExampleBuildGraph builds two disjoint triangles.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Copies(2, builder.Cycle(3)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NumVertices(), g.NumEdges())
	fmt.Println(g.Names())
	// Output:
	// 6 6
	// [c0:0 c0:1 c0:2 c1:0 c1:1 c1:2]
}
