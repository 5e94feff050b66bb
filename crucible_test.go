package crucible_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crucible"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// SolveSuite runs Solve against the published sample grid.
type SolveSuite struct {
	suite.Suite
	ctx  context.Context
	grid *gridgraph.Grid
}

func (s *SolveSuite) SetupTest() {
	s.ctx = context.Background()
	g, err := gridgraph.LoadFile("testdata/sample.txt", gridgraph.DefaultGridOptions())
	s.Require().NoError(err)
	s.grid = g
}

// TestDefaults: the fixed invocation renders both parts in order.
func (s *SolveSuite) TestDefaults() {
	rep, err := crucible.Solve(s.ctx, s.grid, crucible.DefaultOptions())
	s.Require().NoError(err)
	s.Require().Len(rep.Answers, 2)

	s.Equal("Part 1", rep.Answers[0].Part)
	s.Equal("bounded(max=3)", rep.Answers[0].Policy)
	s.Equal("Part 1: 102\nPart 2: 110\n", rep.String())
}

// TestHeadingNone: leaving None counts as a turn, which the strict
// minimum-run part cannot make with an empty run.
func (s *SolveSuite) TestHeadingNone() {
	opts := crucible.DefaultOptions()
	opts.Heading = gridgraph.None

	rep, err := crucible.Solve(s.ctx, s.grid, opts)
	s.Require().NoError(err)
	s.Equal("Part 1: 102\nPart 2: unreachable\n", rep.String())
}

// TestHeadingNoneFreeStart lets the first move go in any direction.
func (s *SolveSuite) TestHeadingNoneFreeStart() {
	opts := crucible.DefaultOptions()
	opts.Heading = gridgraph.None
	opts.Parts[1].Policy = dijkstra.MinMaxRun{Min: 4, Max: 10, FreeStart: true}

	rep, err := crucible.Solve(s.ctx, s.grid, opts)
	s.Require().NoError(err)
	s.Equal("Part 1: 102\nPart 2: 94\n", rep.String())
}

// TestUnreachableRendering: a cost cap below the answer reports unreachable.
func (s *SolveSuite) TestUnreachableRendering() {
	opts := crucible.DefaultOptions()
	opts.MaxCost = 105

	rep, err := crucible.Solve(s.ctx, s.grid, opts)
	s.Require().NoError(err)
	s.Equal("Part 1: 102\nPart 2: unreachable\n", rep.String())
}

// TestExplicitTarget overrides the bottom-right default.
func (s *SolveSuite) TestExplicitTarget() {
	opts := crucible.DefaultOptions()
	opts.Target = &gridgraph.Coordinate{Row: 0, Col: 0}

	rep, err := crucible.Solve(s.ctx, s.grid, opts)
	s.Require().NoError(err)
	s.True(rep.Answers[0].Result.Found)
	s.Zero(rep.Answers[0].Result.Cost)
}

// TestPartErrorPropagates: an invalid policy fails the whole run.
func (s *SolveSuite) TestPartErrorPropagates() {
	opts := crucible.DefaultOptions()
	opts.Parts = append(opts.Parts, crucible.Part{Name: "Broken", Policy: dijkstra.MinMaxRun{Min: 9, Max: 1}})

	_, err := crucible.Solve(s.ctx, s.grid, opts)
	s.Require().ErrorIs(err, dijkstra.ErrBadRunBounds)
	s.Contains(err.Error(), "Broken")
}

// TestLogging checks one structured record per part.
func (s *SolveSuite) TestLogging() {
	var buf bytes.Buffer
	opts := crucible.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	_, err := crucible.Solve(s.ctx, s.grid, opts)
	s.Require().NoError(err)
	s.Equal(2, strings.Count(buf.String(), "part solved"))
	s.Contains(buf.String(), `part="Part 2"`)
	s.Contains(buf.String(), "cost=110")
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestSolve_Errors(t *testing.T) {
	_, err := crucible.Solve(context.Background(), nil, crucible.DefaultOptions())
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	g, err := gridgraph.NewGrid([][]int{{1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	_, err = crucible.Solve(context.Background(), g, crucible.Options{})
	assert.ErrorIs(t, err, crucible.ErrNoParts)
}

func TestReport_WriteTo(t *testing.T) {
	rep := crucible.Report{Answers: []crucible.Answer{
		{Part: "Part 1", Result: dijkstra.Result{Cost: 7, Found: true}},
		{Part: "Part 2"},
	}}
	var buf bytes.Buffer
	n, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "Part 1: 7\nPart 2: unreachable\n", buf.String())
}
