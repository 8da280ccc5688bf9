package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolath/core"
)

// ExampleReadEdgeList demonstrates loading and the canonical edge set.
func ExampleReadEdgeList() {
	src := `# a square with a duplicate and a loop
A B
B C
C D
D A
B A
C C
`
	g, err := core.ReadEdgeList(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.NumVertices())
	fmt.Println("edges:", g.NumEdges())
	for _, e := range g.Edges() {
		u, _ := g.Name(e.U)
		v, _ := g.Name(e.V)
		fmt.Printf("%s-%s ", u, v)
	}
	fmt.Println()

	// Output:
	// vertices: 4
	// edges: 4
	// A-B A-D B-C C-D
}
