package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleParse reads a small cost grid and inspects its corners.
func ExampleParse() {
	g, err := gridgraph.Parse(strings.NewReader("2413\n3215\n3255\n"), gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	br := g.BottomRight()
	fmt.Printf("%dx%d, target %v costs %d\n", g.Height(), g.Width(), br, g.Cost(br))
	// Output: 3x4, target (2,3) costs 5
}

// ExampleGrid_LowerBound computes the unconstrained floor for a crossing.
//
// Complexity: O(W·H·log(W·H)), Memory: O(W·H)
func ExampleGrid_LowerBound() {
	g, _ := gridgraph.NewGrid([][]int{
		{1, 9, 9},
		{1, 1, 9},
		{9, 1, 1},
	}, gridgraph.DefaultGridOptions())

	cost, ok := g.LowerBound(g.TopLeft(), g.BottomRight())
	fmt.Println(cost, ok)
	// Output: 4 true
}
