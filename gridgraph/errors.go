package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows, or its first row is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrInvalidCell indicates a non-digit character in the text input.
	ErrInvalidCell = errors.New("gridgraph: cell must be a digit 0-9")
	// ErrUnknownDirection indicates a direction name ParseDirection does not know.
	ErrUnknownDirection = errors.New("gridgraph: unknown direction")
)
