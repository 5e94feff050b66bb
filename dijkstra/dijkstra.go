// Package dijkstra implements a run-length constrained variant of
// Dijkstra's shortest-path algorithm on cost grids.
//
// A path across a gridgraph.Grid pays the cost of every cell it enters.
// A Policy restricts how many consecutive steps the path may take in one
// direction, so the search runs over augmented states (position,
// direction, run length) rather than bare cells.
//
// Complexity:
//
//   - Time:  O(S log S), S = cells × 4 × (max run + 1)
//   - Each state is settled at most once.
//   - Each settled state pushes at most 3 successors (4 from None).
//   - Space: O(S)
//   - O(S) for the settled map.
//   - O(S) worst-case entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - The target test runs when a state is popped, before the stale-entry
//     check, so the first accepted target state popped is optimal.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries when popped.
//   - We stop exploring once the minimum cost in the heap exceeds MaxCost.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ctxPollInterval is how many pops happen between context checks.
const ctxPollInterval = 1024

// Search computes the minimal cost of a path from Options.Start to
// Options.Target on g under Options.Policy. It accepts functional options
// on top of DefaultOptions(g).
//
// Returns:
//
//   - res: Result with Found=false if the target cannot be reached under
//     the policy (or only above MaxCost).
//   - err: error if inputs are invalid or ctx is cancelled.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Policy must be non-nil (ErrNilPolicy).
//  3. Policy bounds must be valid (ErrBadRunBounds).
//  4. Start must be traversable (ErrStartNotFound).
//
// An untraversable Target is not an error; it is simply never reached.
//
// Complexity:
//
//   - Time:  O(S log S)
//   - Space: O(S)
func Search(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(g)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.Policy == nil {
		return Result{}, ErrNilPolicy
	}
	if err := cfg.Policy.Validate(); err != nil {
		return Result{}, err
	}
	if !g.IsTraversable(cfg.Start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartNotFound, cfg.Start)
	}

	// 3) Run on fresh state
	r := &runner{
		g:       g,
		options: cfg,
		settled: make(map[State]int64, g.Cells()*4),
		pq:      make(statePQ, 0, g.Cells()),
	}
	r.init()

	return r.process(ctx)
}

// SearchBounded returns the minimal cost from start to target when at most
// DefaultMaxRun consecutive steps may be taken in one direction.
// ok is false if the target is unreachable or start is not a grid cell.
func SearchBounded(g *gridgraph.Grid, start gridgraph.Coordinate, dir gridgraph.Direction, target gridgraph.Coordinate) (cost int64, ok bool) {
	return searchWith(g, start, dir, target, BoundedRun{Max: DefaultMaxRun})
}

// SearchMinMax returns the minimal cost from start to target when every
// straight run must be between DefaultMinRun and DefaultMaxRunLong steps
// long, including the final one.
// ok is false if the target is unreachable or start is not a grid cell.
func SearchMinMax(g *gridgraph.Grid, start gridgraph.Coordinate, dir gridgraph.Direction, target gridgraph.Coordinate) (cost int64, ok bool) {
	return searchWith(g, start, dir, target, MinMaxRun{Min: DefaultMinRun, Max: DefaultMaxRunLong})
}

func searchWith(g *gridgraph.Grid, start gridgraph.Coordinate, dir gridgraph.Direction, target gridgraph.Coordinate, p Policy) (int64, bool) {
	res, err := Search(context.Background(), g, From(start), Heading(dir), To(target), WithPolicy(p))
	if err != nil || !res.Found {
		return 0, false
	}

	return res.Cost, true
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only within Search.
	options Options         // Configuration options (endpoints, policy, cap).
	settled map[State]int64 // Maps state → cost at which it was expanded.
	pq      statePQ         // Min-heap of stateItem for lazy priority queue.
	pushed  int
}

// init pushes the start state (Start, StartDirection, 0) with cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(0, State{Pos: r.options.Start, Dir: r.options.StartDirection, Run: 0})
}

func (r *runner) push(cost int64, s State) {
	heap.Push(&r.pq, stateItem{cost: cost, state: s})
	r.pushed++
}

// process is the core loop. It repeatedly extracts the cheapest state and
// either accepts it, skips it as stale, or settles and expands it.
//
// Loop termination conditions:
//
//   - An accepted target state is popped (Found).
//   - The heap becomes empty (unreachable).
//   - The minimum cost in the heap exceeds MaxCost (unreachable within cap).
//   - ctx is cancelled.
func (r *runner) process(ctx context.Context) (Result, error) {
	target := r.options.Target
	policy := r.options.Policy
	pops := 0
	for r.pq.Len() > 0 {
		if pops%ctxPollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return r.result(0, false), fmt.Errorf("dijkstra: search interrupted: %w", err)
			}
		}
		pops++

		// 1) Pop the cheapest frontier entry.
		item := heap.Pop(&r.pq).(stateItem)
		cost, s := item.cost, item.state

		// 2) Past the cap nothing cheaper remains.
		if cost > r.options.MaxCost {
			break
		}

		// 3) First accepted target state popped is optimal.
		if s.Pos == target && policy.Accepts(s) {
			return r.result(cost, true), nil
		}

		// 4) Skip stale or duplicate entries.
		if prev, ok := r.settled[s]; ok && prev <= cost {
			continue
		}

		// 5) Settle and expand.
		r.settled[s] = cost
		r.relax(cost, s)
	}

	return r.result(0, false), nil
}

// relax pushes every successor of s admitted by the direction rule, the
// grid bounds and the policy.
func (r *runner) relax(cost int64, s State) {
	for _, d := range candidates(s.Dir) {
		next := s.Pos.Add(d)
		if !r.g.IsTraversable(next) {
			continue
		}
		run, ok := r.options.Policy.Step(s, d)
		if !ok {
			continue
		}
		ns := State{Pos: next, Dir: d, Run: run}
		// A settled state already holds a cost no greater than this one.
		if _, done := r.settled[ns]; done {
			continue
		}
		r.push(cost+int64(r.g.Cost(next)), ns)
	}
}

func (r *runner) result(cost int64, found bool) Result {
	return Result{
		Cost:    cost,
		Found:   found,
		Settled: len(r.settled),
		Pushed:  r.pushed,
	}
}

// stateItem is one frontier entry: an augmented state and the cost of
// the path that reached it.
type stateItem struct {
	cost  int64
	state State
}

// statePQ is a min-heap of stateItem ordered by cost ascending. Ties are
// broken arbitrarily; all equal-cost entries are equally valid.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element after heap reordering.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
