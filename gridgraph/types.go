// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"fmt"
	"strings"
)

// Coordinate addresses a single cell by (Row, Col). It is a comparable
// value type and is safe to use as a map key.
type Coordinate struct {
	Row, Col int
}

// Add returns the coordinate one step away from c in direction d.
func (c Coordinate) Add(d Direction) Coordinate {
	return Coordinate{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a unit vector along a single axis: up or down, left or right.
// The zero value is None, used before any move has been made.
type Direction struct {
	DRow, DCol int
}

var (
	// None is the "no move yet" sentinel.
	None = Direction{}
	// Up moves to the previous row.
	Up = Direction{DRow: -1}
	// Down moves to the next row.
	Down = Direction{DRow: 1}
	// Left moves to the previous column.
	Left = Direction{DCol: -1}
	// Right moves to the next column.
	Right = Direction{DCol: 1}
)

// Directions lists the four real directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction. Reverse(None) is None.
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// String returns the lower-case name of d, or "none".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	}

	return fmt.Sprintf("direction(%d,%d)", d.DRow, d.DCol)
}

// ParseDirection is the inverse of Direction.String. Matching is
// case-insensitive; unknown names yield ErrUnknownDirection.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "none", "":
		return None, nil
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Rectangular rejects rows of differing lengths with ErrNonRectangular.
	// When false, a short row simply has fewer traversable cells.
	Rectangular bool
}

// DefaultGridOptions returns a GridOptions with Rectangular=true.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Rectangular: true,
	}
}

// Grid maps coordinates to non-negative traversal costs. It is immutable
// once built and therefore safe for concurrent readers.
// A coordinate is traversable iff its row exists and its column lies
// inside that row.
type Grid struct {
	cells [][]int
	width int
}
