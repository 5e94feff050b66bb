// Package gridgraph provides utilities to treat a 2D grid of integer cell
// costs as a graph of 4-connected cells.
package gridgraph

import "fmt"

// NewGrid constructs a Grid from a 2D slice of cell costs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or its first row is empty,
// ErrNonRectangular if opts.Rectangular is set and any row length differs,
// and a wrapped ErrNegativeCost for the first negative cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	cells := make([][]int, len(values))
	for r, row := range values {
		if opts.Rectangular && len(row) != len(values[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), len(values[0]))
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %v=%d", ErrNegativeCost, Coordinate{r, c}, v)
			}
		}
		if len(row) > w {
			w = len(row)
		}
		// Deep copy to prevent external mutation
		cells[r] = make([]int, len(row))
		copy(cells[r], row)
	}

	return &Grid{cells: cells, width: w}, nil
}

// IsTraversable reports whether c addresses a cell of the grid.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Coordinate) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < len(g.cells[c.Row])
}

// Cost returns the cost of entering cell c.
// The caller must check IsTraversable first; Cost panics on a coordinate
// outside the grid.
func (g *Grid) Cost(c Coordinate) int {
	return g.cells[c.Row][c.Col]
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.cells) }

// Width returns the length of the longest row.
func (g *Grid) Width() int { return g.width }

// Cells returns the number of traversable cells.
func (g *Grid) Cells() int {
	n := 0
	for _, row := range g.cells {
		n += len(row)
	}

	return n
}

// TopLeft returns (0,0).
func (g *Grid) TopLeft() Coordinate { return Coordinate{} }

// BottomRight returns the last row index paired with the last column index
// of that row. For a rectangular grid this is the opposite corner.
// If the last row is empty the result is not traversable.
func (g *Grid) BottomRight() Coordinate {
	last := len(g.cells) - 1

	return Coordinate{Row: last, Col: len(g.cells[last]) - 1}
}
