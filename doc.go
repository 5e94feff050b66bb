// Package crucible solves run-length constrained crossings of digit cost
// grids: the cheapest way to haul a load from the top-left cell to the
// bottom-right one when it cannot keep going straight for too long, or,
// for heavier loads, must also keep going straight for a while before it
// can turn or stop.
//
// What is in the module?
//
//	• gridgraph/: Grid, Coordinate and Direction types, the text loader,
//	  and an unconstrained lower bound.
//	• dijkstra/ : Dijkstra over (position, direction, run length) with
//	  pluggable run-length policies (BoundedRun, MinMaxRun).
//	• config/   : YAML configuration of endpoints and parts.
//	• cmd/crucible: command-line front end.
//
// This package ties them together: Solve runs every configured Part on
// one grid and returns a Report that renders as
//
//	Part 1: 102
//	Part 2: 110
//
// Quick example:
//
//	g, _ := gridgraph.LoadFile("inputs/day17.txt", gridgraph.DefaultGridOptions())
//	rep, err := crucible.Solve(ctx, g, crucible.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	rep.WriteTo(os.Stdout)
package crucible
