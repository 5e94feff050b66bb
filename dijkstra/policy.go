package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Default run-length bounds.
const (
	// DefaultMaxRun is the BoundedRun limit used by SearchBounded.
	DefaultMaxRun = 3
	// DefaultMinRun is the MinMaxRun minimum used by SearchMinMax.
	DefaultMinRun = 4
	// DefaultMaxRunLong is the MinMaxRun maximum used by SearchMinMax.
	DefaultMaxRunLong = 10
)

// Policy decides which moves are legal and where a path may stop.
// Implementations must be pure functions of their arguments.
type Policy interface {
	// Step returns the run length after leaving s in direction next and
	// whether the move is admitted. next is never the reverse of s.Dir.
	Step(s State, next gridgraph.Direction) (run int, ok bool)
	// Accepts reports whether a state already on the target may end the path.
	Accepts(s State) bool
	// Validate reports inconsistent bounds as ErrBadRunBounds.
	Validate() error
	fmt.Stringer
}

// BoundedRun allows at most Max consecutive steps in one direction.
//
// Run counts steps already taken in the current direction before the
// move: it resets to 0 on a turn and a move is admitted only while the
// resulting run stays below Max. A path may stop on the target in any
// state.
type BoundedRun struct {
	Max int
}

// Step implements Policy.
func (p BoundedRun) Step(s State, next gridgraph.Direction) (int, bool) {
	run := 0
	if next == s.Dir {
		run = s.Run + 1
	}

	return run, run < p.Max
}

// Accepts implements Policy; every state on the target is accepted.
func (p BoundedRun) Accepts(State) bool { return true }

// Validate implements Policy.
func (p BoundedRun) Validate() error {
	if p.Max < 1 {
		return fmt.Errorf("%w: max run %d < 1", ErrBadRunBounds, p.Max)
	}

	return nil
}

func (p BoundedRun) String() string { return fmt.Sprintf("bounded(max=%d)", p.Max) }

// MinMaxRun forces at least Min consecutive steps before a turn or a stop,
// and at most Max before a turn.
//
// Run counts steps taken in the current direction including the move
// itself: a turn starts a new run at 1. Leaving the None heading is a
// turn like any other, so from a None start with run 0 nothing is
// admitted unless Min is 0. Set FreeStart to let the first move from None
// go in any direction.
type MinMaxRun struct {
	Min, Max  int
	FreeStart bool
}

// Step implements Policy.
func (p MinMaxRun) Step(s State, next gridgraph.Direction) (int, bool) {
	switch {
	case s.Dir == gridgraph.None && p.FreeStart:
		return 1, true
	case next == s.Dir:
		return s.Run + 1, s.Run < p.Max
	default:
		return 1, s.Run >= p.Min
	}
}

// Accepts implements Policy; the final straight run must be at least Min long.
func (p MinMaxRun) Accepts(s State) bool { return s.Run >= p.Min }

// Validate implements Policy.
func (p MinMaxRun) Validate() error {
	if p.Min < 0 || p.Max < 1 || p.Min > p.Max {
		return fmt.Errorf("%w: min run %d, max run %d", ErrBadRunBounds, p.Min, p.Max)
	}

	return nil
}

func (p MinMaxRun) String() string {
	if p.FreeStart {
		return fmt.Sprintf("minmax(min=%d,max=%d,free-start)", p.Min, p.Max)
	}

	return fmt.Sprintf("minmax(min=%d,max=%d)", p.Min, p.Max)
}

// Candidate direction lists, straight ahead first. Shared; never modified.
var (
	fromNone  = []gridgraph.Direction{gridgraph.Up, gridgraph.Down, gridgraph.Left, gridgraph.Right}
	fromUp    = []gridgraph.Direction{gridgraph.Up, gridgraph.Right, gridgraph.Left}
	fromDown  = []gridgraph.Direction{gridgraph.Down, gridgraph.Right, gridgraph.Left}
	fromLeft  = []gridgraph.Direction{gridgraph.Left, gridgraph.Down, gridgraph.Up}
	fromRight = []gridgraph.Direction{gridgraph.Right, gridgraph.Down, gridgraph.Up}
)

// Candidates returns the directions a path heading in d may take next,
// before any run-length filtering: straight on or a 90° turn, never a
// reversal. From None (or any non-unit vector) all four directions are
// candidates.
func Candidates(d gridgraph.Direction) []gridgraph.Direction {
	c := candidates(d)
	out := make([]gridgraph.Direction, len(c))
	copy(out, c)

	return out
}

func candidates(d gridgraph.Direction) []gridgraph.Direction {
	switch d {
	case gridgraph.Up:
		return fromUp
	case gridgraph.Down:
		return fromDown
	case gridgraph.Left:
		return fromLeft
	case gridgraph.Right:
		return fromRight
	default:
		return fromNone
	}
}
