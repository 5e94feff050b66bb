// Package dijkstra defines core types and configuration options
// for the run-length constrained shortest-path search on cost grids.
//
// The search runs Dijkstra over augmented states (position, direction,
// run length) instead of bare cells, because whether a move is legal
// depends on how many steps were just taken in the same direction.
//
// Complexity:
//
//	– Time:  O(S log S)   where S = cells × 4 directions × (max run + 1)
//	   • Each state is settled at most once.
//	   • Each settled state pushes at most 3 successors (no reversals).
//	– Space: O(S)
//	   • O(S) for the settled map.
//	   • O(S) entries in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Start:          cell the path leaves from; its own cost is never paid.
//	– StartDirection: heading before the first move (leaving None is a turn; see MinMaxRun.FreeStart).
//	– Target:         cell the path must end on.
//	– Policy:         run-length rule set (BoundedRun, MinMaxRun).
//	– MaxCost:        optional cap; states costlier than this are not expanded.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrNilPolicy      if the policy is nil.
//	– ErrBadRunBounds   if the policy's run bounds are inconsistent.
//	– ErrStartNotFound  if the start coordinate is not a grid cell.
//	– ErrBadMaxCost     if MaxCost < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the search implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilPolicy indicates that no run-length policy was configured.
	ErrNilPolicy = errors.New("dijkstra: policy is nil")

	// ErrBadRunBounds indicates a policy whose run-length bounds cannot be satisfied.
	ErrBadRunBounds = errors.New("dijkstra: invalid run-length bounds")

	// ErrStartNotFound indicates that the start coordinate is not a cell of the grid.
	ErrStartNotFound = errors.New("dijkstra: start coordinate not in grid")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// State is one node of the augmented search space. Two states are equal
// iff position, direction and run length are all equal, which makes State
// usable directly as a map key.
type State struct {
	Pos gridgraph.Coordinate
	Dir gridgraph.Direction
	// Run counts consecutive steps taken in Dir, as the policy defines it.
	Run int
}

// Result is the outcome of one search.
//
// Found is false when no accepted state at the target could be reached;
// Cost is then zero and carries no meaning.
type Result struct {
	Cost    int64 // minimal total cost of entered cells
	Found   bool  // whether the target was reached under the policy
	Settled int   // number of distinct states expanded
	Pushed  int   // number of frontier pushes, duplicates included
}

// Options configures the behavior of the search.
//
// Start          – coordinate the path starts on (must be traversable).
// StartDirection – heading before the first move; leaving None counts as a turn.
// Target         – coordinate the path must finish on.
// Policy         – run-length rules; see BoundedRun and MinMaxRun.
// MaxCost        – optional cap on explored cost.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Start          gridgraph.Coordinate
	StartDirection gridgraph.Direction
	Target         gridgraph.Coordinate
	Policy         Policy
	MaxCost        int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// From sets the start coordinate.
func From(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// Heading sets the direction the path is considered to be travelling in
// before its first move.
func Heading(d gridgraph.Direction) Option {
	return func(o *Options) {
		o.StartDirection = d
	}
}

// To sets the target coordinate.
func To(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.Target = c
	}
}

// WithPolicy selects the run-length policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxCost sets a cost cap. States whose cost exceeds it are not
// expanded, so a target beyond the cap reports Found=false.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns Options for a corner-to-corner crossing of g:
//
//   - Start:          top-left cell (0,0).
//   - StartDirection: Down.
//   - Target:         g.BottomRight(), or (0,0) if g is nil.
//   - Policy:         BoundedRun{Max: 3}.
//   - MaxCost:        math.MaxInt64 (no cap).
func DefaultOptions(g *gridgraph.Grid) Options {
	var target gridgraph.Coordinate
	if g != nil {
		target = g.BottomRight()
	}

	return Options{
		Start:          gridgraph.Coordinate{},
		StartDirection: gridgraph.Down,
		Target:         target,
		Policy:         BoundedRun{Max: DefaultMaxRun},
		MaxCost:        math.MaxInt64,
	}
}
