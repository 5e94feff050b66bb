package crucible

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// ErrNoParts indicates Solve was given nothing to run.
var ErrNoParts = errors.New("crucible: no parts configured")

// Part is one named search to run against the grid.
type Part struct {
	Name   string
	Policy dijkstra.Policy
}

// DefaultParts returns the two standard parts: at most three steps in a
// line, then between four and ten.
func DefaultParts() []Part {
	return []Part{
		{Name: "Part 1", Policy: dijkstra.BoundedRun{Max: dijkstra.DefaultMaxRun}},
		{Name: "Part 2", Policy: dijkstra.MinMaxRun{Min: dijkstra.DefaultMinRun, Max: dijkstra.DefaultMaxRunLong}},
	}
}

// Options configures Solve.
type Options struct {
	Parts   []Part
	Start   gridgraph.Coordinate
	Heading gridgraph.Direction
	// Target is the destination cell; nil means the grid's bottom-right cell.
	Target *gridgraph.Coordinate
	// MaxCost caps every search; 0 means unlimited.
	MaxCost int64
	Logger  *slog.Logger
}

// DefaultOptions returns the fixed invocation: both default parts from
// (0,0) heading Down to the bottom-right cell, with logging discarded.
func DefaultOptions() Options {
	return Options{
		Parts:   DefaultParts(),
		Start:   gridgraph.Coordinate{},
		Heading: gridgraph.Down,
	}
}

// Answer is the outcome of one Part.
type Answer struct {
	Part     string
	Policy   string
	Result   dijkstra.Result
	Duration time.Duration
}

// Report holds one Answer per Part, in Part order.
type Report struct {
	Answers []Answer
}

// WriteTo renders one "<part>: <cost>" line per answer, or
// "<part>: unreachable" when the part found no path.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, a := range r.Answers {
		if a.Result.Found {
			fmt.Fprintf(&sb, "%s: %d\n", a.Part, a.Result.Cost)
		} else {
			fmt.Fprintf(&sb, "%s: unreachable\n", a.Part)
		}
	}
	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}

// String returns the rendered report.
func (r Report) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)

	return sb.String()
}

// Solve runs every part of opts against g. Each part gets its own search
// state; parts run concurrently since g is read-only. The first failing
// part cancels the others and its error is returned.
func Solve(ctx context.Context, g *gridgraph.Grid, opts Options) (Report, error) {
	if g == nil {
		return Report{}, dijkstra.ErrNilGrid
	}
	if len(opts.Parts) == 0 {
		return Report{}, ErrNoParts
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	target := g.BottomRight()
	if opts.Target != nil {
		target = *opts.Target
	}

	searchOpts := []dijkstra.Option{
		dijkstra.From(opts.Start),
		dijkstra.Heading(opts.Heading),
		dijkstra.To(target),
	}
	if opts.MaxCost > 0 {
		searchOpts = append(searchOpts, dijkstra.WithMaxCost(opts.MaxCost))
	}

	if bound, ok := g.LowerBound(opts.Start, target); ok {
		logger.Debug("unconstrained lower bound", "start", opts.Start, "target", target, "cost", bound)
	} else {
		logger.Warn("target not connected to start", "start", opts.Start, "target", target)
	}

	answers := make([]Answer, len(opts.Parts))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, part := range opts.Parts {
		i, part := i, part
		eg.Go(func() error {
			began := time.Now()
			partOpts := append(searchOpts[:len(searchOpts):len(searchOpts)], dijkstra.WithPolicy(part.Policy))
			res, err := dijkstra.Search(egCtx, g, partOpts...)
			if err != nil {
				return fmt.Errorf("crucible: %s: %w", part.Name, err)
			}
			answers[i] = Answer{
				Part:     part.Name,
				Policy:   policyName(part.Policy),
				Result:   res,
				Duration: time.Since(began),
			}
			logger.Info("part solved",
				"part", part.Name,
				"policy", answers[i].Policy,
				"found", res.Found,
				"cost", res.Cost,
				"settled", res.Settled,
				"pushed", res.Pushed,
				"duration", answers[i].Duration,
			)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	return Report{Answers: answers}, nil
}

func policyName(p dijkstra.Policy) string {
	if p == nil {
		return "<nil>"
	}

	return p.String()
}
