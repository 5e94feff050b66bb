// Package gridgraph treats a 2D grid of digit costs as a 4-connected graph
// of cells, the input model for the run-length constrained searches in
// package dijkstra.
//
// What:
//
//   - Coordinate and Direction value types (Up, Down, Left, Right, None).
//   - Grid wraps [][]int cell costs; it is immutable once built.
//   - Parse and LoadFile read the text form: one row per line, one digit
//     per cell.
//   - LowerBound computes the unconstrained cheapest cost between two
//     cells, a floor for every constrained search.
//
// Cost model:
//
//   - Entering a cell costs its value. The start cell is never paid for.
//   - A coordinate is traversable iff it addresses a cell of the grid.
//     Cost must only be called on traversable coordinates.
//
// Complexity:
//
//   - NewGrid, Parse: O(W×H), Memory: O(W×H).
//   - LowerBound:     O(W×H·log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Rectangular: reject rows of differing lengths.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths (Rectangular only).
//   - ErrNegativeCost: a cell cost is below zero.
//   - ErrInvalidCell: a non-digit character in the text input.
//   - ErrUnknownDirection: ParseDirection got an unknown name.
package gridgraph
