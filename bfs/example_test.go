package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolath/bfs"
	"github.com/katalvlaran/percolath/core"
)

// ExampleComponentSizes shows component labelling of a disconnected graph.
func ExampleComponentSizes() {
	g, _ := core.ReadEdgeList(strings.NewReader("A B\nB C\nD E\n"))

	sizes, err := bfs.ComponentSizes(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sizes)

	// Output:
	// [3 2]
}
