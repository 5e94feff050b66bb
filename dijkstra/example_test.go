// Package dijkstra_test provides examples demonstrating the constrained search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleSearchBounded crosses a uniform 3×3 grid. Two steps down and two
// to the right never exceed the run limit, so the cost is the path length.
func ExampleSearchBounded() {
	g, _ := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())

	cost, ok := dijkstra.SearchBounded(g, g.TopLeft(), gridgraph.Down, g.BottomRight())
	fmt.Println(cost, ok)
	// Output: 4 true
}

// ExampleSearchMinMax shows that a long straight corridor is fine for the
// minimum-run policy while the bounded policy must weave through the
// expensive row below.
func ExampleSearchMinMax() {
	g, _ := gridgraph.Parse(strings.NewReader("11111\n99999\n"), gridgraph.DefaultGridOptions())
	target := gridgraph.Coordinate{Row: 0, Col: 4}

	a, _ := dijkstra.SearchBounded(g, g.TopLeft(), gridgraph.Right, target)
	b, _ := dijkstra.SearchMinMax(g, g.TopLeft(), gridgraph.Right, target)
	fmt.Printf("bounded=%d minmax=%d\n", a, b)
	// Output: bounded=22 minmax=4
}

// ExampleSearch configures every option explicitly and reports an
// unreachable target through Result.Found.
func ExampleSearch() {
	g, _ := gridgraph.Parse(strings.NewReader("11111\n"), gridgraph.DefaultGridOptions())

	res, err := dijkstra.Search(
		context.Background(),
		g,
		dijkstra.From(gridgraph.Coordinate{Row: 0, Col: 0}),
		dijkstra.Heading(gridgraph.Right),
		dijkstra.To(gridgraph.Coordinate{Row: 0, Col: 4}),
		dijkstra.WithPolicy(dijkstra.BoundedRun{Max: 3}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	// Output: found: false
}
