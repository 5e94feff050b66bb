// Package dijkstra provides a run-length constrained minimum-cost search
// over gridgraph.Grid cost grids with non-negative cell costs.
//
// Overview:
//
//   - A path starts on one cell heading in a given direction and pays the
//     cost of every cell it enters.
//   - It may continue straight or turn 90°, never reverse.
//   - A Policy bounds how long it may keep going straight and where it may
//     stop. BoundedRun caps straight runs; MinMaxRun also enforces a
//     minimum run before any turn and at the finish.
//   - Search is Dijkstra over the augmented state (position, direction,
//     run length) with a min-heap and lazy deletion of stale entries.
//
// When to use:
//
//   - Movement with momentum or steering limits on a tile map: carts,
//     crucibles, vehicles that must commit to a heading for a while.
//   - Any grid routing problem where edge legality depends on the recent
//     movement history and not just on the current cell.
//
// Key features:
//
//   - Functional options: From, Heading, To, WithPolicy, WithMaxCost.
//   - Explicit optional result: Result.Found instead of a magic infinity.
//   - Search statistics: Result.Settled and Result.Pushed.
//   - Cancellation: the context is polled while the heap is drained.
//   - Convenience wrappers: SearchBounded (max 3) and SearchMinMax (4..10).
//
// Performance and complexity:
//
//   - Time:  O(S log S) with S = cells × 4 × (max run + 1)
//   - Space: O(S) for the settled map and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *gridgraph.Grid to Search.
//   - ErrNilPolicy:
//     Returned if the Policy option is nil.
//   - ErrBadRunBounds:
//     Returned if the policy's bounds are inconsistent (e.g. Min > Max).
//   - ErrStartNotFound:
//     Returned if the start coordinate is not a grid cell.
//   - ErrBadMaxCost:
//     Raised (via panic) if you set MaxCost to a negative value.
//
// An unreachable target is not an error: Search returns Found=false.
//
// API reference:
//
//	func Search(
//	    ctx context.Context,
//	    g *gridgraph.Grid,
//	    opts ...Option,
//	) (Result, error)
package dijkstra
